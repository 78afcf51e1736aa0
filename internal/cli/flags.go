package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// layoutFlags are the layouter parameters shared by layout and preview.
type layoutFlags struct {
	center       string
	spiralRadius float64
	spiralStep   float64
	firstPress   float64
	press        float64
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.center, "center", "", "layout center as x,y (default: 0,0 or the input's center)")
	cmd.Flags().Float64Var(&f.spiralRadius, "spiral-radius", 0, "spiral base radius")
	cmd.Flags().Float64Var(&f.spiralStep, "spiral-step", 0, "spiral angle step in radians")
	cmd.Flags().Float64Var(&f.firstPress, "first-press-step", 0, "step of the diagonal compaction pass")
	cmd.Flags().Float64Var(&f.press, "press-step", 0, "step of the axis compaction passes")
}

// apply copies flags the user set onto opts.
func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	if f.center != "" {
		p, err := parsePoint(f.center)
		if err != nil {
			return err
		}
		opts.Center = &p
	}
	set := cmd.Flags().Changed
	if set("spiral-radius") {
		opts.SpiralRadius = f.spiralRadius
	}
	if set("spiral-step") {
		opts.SpiralStep = f.spiralStep
	}
	if set("first-press-step") {
		opts.FirstPressStep = f.firstPress
	}
	if set("press-step") {
		opts.PressStep = f.press
	}
	return nil
}

// renderFlags are the output settings shared by layout and render.
type renderFlags struct {
	formats    string
	fill       string
	stroke     string
	background string
	scale      int
	markCenter bool
}

func (f *renderFlags) register(cmd *cobra.Command, formatsHelp string) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", formatsHelp)
	cmd.Flags().StringVar(&f.fill, "fill", "", "rectangle fill color (#rgb or #rrggbb)")
	cmd.Flags().StringVar(&f.stroke, "stroke", "", `outline color, or "none"`)
	cmd.Flags().StringVar(&f.background, "background", "", "background color (default: transparent)")
	cmd.Flags().IntVar(&f.scale, "scale", 0, fmt.Sprintf("PNG upscaling factor (default %d)", pipeline.DefaultScale))
	cmd.Flags().BoolVar(&f.markCenter, "mark-center", false, "mark the layout center in SVG output")
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if formats := parseFormats(f.formats); len(formats) > 0 {
		opts.Formats = formats
	}
	set := cmd.Flags().Changed
	if set("fill") {
		opts.Fill = f.fill
	}
	if set("stroke") {
		opts.Stroke = f.stroke
	}
	if set("background") {
		opts.Background = f.background
	}
	if set("scale") {
		opts.Scale = f.scale
	}
	if set("mark-center") {
		opts.MarkCenter = f.markCenter
	}
}

// parsePoint parses "x,y".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "center must be x,y, got %q", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "center must be integers x,y, got %q", s)
	}
	return geom.Pt(x, y), nil
}
