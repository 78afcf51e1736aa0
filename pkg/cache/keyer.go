package cache

import "fmt"

// Keyer derives cache keys for pipeline stages.
type Keyer interface {
	// LayoutKey identifies a layout by everything that determines it.
	LayoutKey(opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendering of the layout with hash layoutHash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds the inputs of a layout run.
type LayoutKeyOpts struct {
	CenterX int      `json:"cx"`
	CenterY int      `json:"cy"`
	Sizes   [][2]int `json:"sizes"`
	// Algo fingerprints the layouter options (spiral and press steps).
	Algo string `json:"algo"`
}

// ArtifactKeyOpts holds the render settings that change an artifact.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Fill       string `json:"fill,omitempty"`
	Stroke     string `json:"stroke,omitempty"`
	Background string `json:"background,omitempty"`
	Scale      int    `json:"scale,omitempty"`
	MarkCenter bool   `json:"mark_center,omitempty"`
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
