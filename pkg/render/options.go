package render

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

var (
	// DefaultFill is cadet blue.
	DefaultFill color.Color = color.RGBA{R: 0x5f, G: 0x9e, B: 0xa0, A: 0xff}

	// DefaultStroke is opaque black.
	DefaultStroke color.Color = color.Black
)

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	fill       color.Color
	stroke     color.Color
	background color.Color
	scale      int
	center     *geom.Vector
}

// WithFill sets the rectangle fill color.
func WithFill(c color.Color) Option { return func(r *renderer) { r.fill = c } }

// WithStroke sets the outline color. A nil color disables outlines.
func WithStroke(c color.Color) Option { return func(r *renderer) { r.stroke = c } }

// WithBackground fills the whole canvas before drawing. The default is
// transparent.
func WithBackground(c color.Color) Option { return func(r *renderer) { r.background = c } }

// WithScale sets an integer upscaling factor for PNG output (default 1).
func WithScale(s int) Option { return func(r *renderer) { r.scale = s } }

// WithCenter marks the layout center in SVG output.
func WithCenter(c geom.Vector) Option { return func(r *renderer) { r.center = &c } }

func newRenderer(opts ...Option) renderer {
	r := renderer{fill: DefaultFill, stroke: DefaultStroke, scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale < 1 {
		r.scale = 1
	}
	return r
}

// hexColor formats c as #rrggbb for SVG attributes.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// ParseHexColor parses #rgb or #rrggbb into an opaque color.
func ParseHexColor(s string) (color.Color, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid length %d", len(s))
	}
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}
