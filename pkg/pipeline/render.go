package pipeline

import (
	"fmt"

	pkgio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/render"
)

// RenderFromLayout generates output artifacts in the requested formats.
// Every format fails with EMPTY_LAYOUT when the layout has no rectangles.
func RenderFromLayout(l pkgio.Layout, opts Options) (map[string][]byte, error) {
	ropts, err := opts.RenderOptions(l.Center)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatPNG:
			data, err = render.PNG(l.Rects, ropts...)
		case FormatSVG:
			data, err = render.SVG(l.Rects, ropts...)
		case FormatJSON:
			data, err = render.JSON(l.Rects, render.WithCenter(l.Center))
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
