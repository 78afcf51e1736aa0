// Package pipeline provides the load → layout → render pipeline shared by
// the CLI and the HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a size list from a .txt, .json or .toml file
//  2. Layout: Place every size with a [cloud.Layouter]
//  3. Render: Generate output in the requested formats (PNG, SVG, JSON)
//
// Layout and render results are cached. A layout is fully determined by its
// center, its ordered sizes and the layouter parameters, so identical runs
// reuse earlier work.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "words.txt",
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultScale is the PNG upscaling factor.
	DefaultScale = 4

	// MaxScale bounds PNG upscaling.
	MaxScale = 64

	// DefaultFill is the rectangle fill color.
	DefaultFill = "#5f9ea0"

	// DefaultStroke is the outline color.
	DefaultStroke = "#000000"

	// StrokeNone disables outlines.
	StrokeNone = "none"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// Field tags allow decoding from JSON requests and TOML config files.
type Options struct {
	// Load options
	Input string `json:"input,omitempty" toml:"-"`

	// Layout options
	Sizes          []geom.Size `json:"-" toml:"-"`
	Center         *geom.Point `json:"center,omitempty" toml:"-"`
	SpiralRadius   float64     `json:"spiral_radius,omitempty" toml:"spiral_radius"`
	SpiralStep     float64     `json:"spiral_step,omitempty" toml:"spiral_step"`
	FirstPressStep float64     `json:"first_press_step,omitempty" toml:"first_press_step"`
	PressStep      float64     `json:"press_step,omitempty" toml:"press_step"`
	Refresh        bool        `json:"refresh,omitempty" toml:"-"`

	// Render options
	Formats    []string `json:"formats,omitempty" toml:"formats"`
	Fill       string   `json:"fill,omitempty" toml:"fill"`
	Stroke     string   `json:"stroke,omitempty" toml:"stroke"`
	Background string   `json:"background,omitempty" toml:"background"`
	Scale      int      `json:"scale,omitempty" toml:"scale"`
	MarkCenter bool     `json:"mark_center,omitempty" toml:"mark_center"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the placed cloud.
	Layout pkgio.Layout

	// LayoutHash is the content hash of the encoded layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and work counters.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RectCount   int
	SpiralSteps int
	PressSteps  int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	def := cloud.DefaultOptions()
	if o.SpiralRadius == 0 {
		o.SpiralRadius = def.SpiralRadius
	}
	if o.SpiralStep == 0 {
		o.SpiralStep = def.SpiralStep
	}
	if o.FirstPressStep == 0 {
		o.FirstPressStep = def.FirstPressStep
	}
	if o.PressStep == 0 {
		o.PressStep = def.PressStep
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
// Sizes are checked up front so that a bad entry is reported by index
// before any placement work is done.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"spiral_radius", o.SpiralRadius},
		{"spiral_step", o.SpiralStep},
		{"first_press_step", o.FirstPressStep},
		{"press_step", o.PressStep},
	} {
		if !(v.val > 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %v", v.name, v.val)
		}
	}
	c := o.CenterPoint()
	if err := errors.ValidateCenter(c.X, c.Y); err != nil {
		return err
	}
	for i, s := range o.Sizes {
		if err := errors.ValidateSize(s.Width, s.Height); err != nil {
			return fmt.Errorf("rect %d: %w", i, err)
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Fill == "" {
		o.Fill = DefaultFill
	}
	if o.Stroke == "" {
		o.Stroke = DefaultStroke
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 1 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be between 1 and %d, got %d", MaxScale, o.Scale)
	}
	_, err := o.RenderOptions(geom.Vector{})
	return err
}

// CenterPoint returns the layout center, the origin when unset.
func (o *Options) CenterPoint() geom.Point {
	if o.Center == nil {
		return geom.Point{}
	}
	return *o.Center
}

// CloudOptions converts the layout fields into layouter options.
func (o *Options) CloudOptions() []cloud.Option {
	opts := []cloud.Option{
		cloud.WithSpiral(o.SpiralRadius, o.SpiralStep),
		cloud.WithPressSteps(o.FirstPressStep, o.PressStep),
	}
	if o.Logger != nil {
		opts = append(opts, cloud.WithLogger(o.Logger))
	}
	return opts
}

// RenderOptions converts the render fields into renderer options.
func (o *Options) RenderOptions(center geom.Vector) ([]render.Option, error) {
	fill, err := parseColor("fill", o.Fill)
	if err != nil {
		return nil, err
	}
	opts := []render.Option{render.WithFill(fill), render.WithScale(o.Scale)}

	if o.Stroke == StrokeNone {
		opts = append(opts, render.WithStroke(nil))
	} else {
		stroke, err := parseColor("stroke", o.Stroke)
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithStroke(stroke))
	}

	if o.Background != "" {
		bg, err := parseColor("background", o.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithBackground(bg))
	}
	if o.MarkCenter {
		opts = append(opts, render.WithCenter(center))
	}
	return opts, nil
}

func parseColor(field, s string) (color.Color, error) {
	c, err := render.ParseHexColor(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", field)
	}
	return c, nil
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	c := o.CenterPoint()
	sizes := make([][2]int, len(o.Sizes))
	for i, s := range o.Sizes {
		sizes[i] = [2]int{s.Width, s.Height}
	}
	return cache.LayoutKeyOpts{
		CenterX: c.X,
		CenterY: c.Y,
		Sizes:   sizes,
		Algo: fmt.Sprintf("r=%g;s=%g;p1=%g;p=%g",
			o.SpiralRadius, o.SpiralStep, o.FirstPressStep, o.PressStep),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     format,
		Fill:       o.Fill,
		Stroke:     o.Stroke,
		Background: o.Background,
		MarkCenter: o.MarkCenter,
	}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}
