package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

// PNG renders rects with [Image] and encodes the result as PNG. With
// [WithScale] the buffer is upscaled using nearest-neighbour sampling so
// rectangle edges stay crisp. The scaled canvas is bounded by [MaxPixels].
func PNG(rects []geom.Rect, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	b, err := canvasBounds(rects, r.scale)
	if err != nil {
		return nil, err
	}
	img := r.rasterise(rects, b)

	var out image.Image = img
	if r.scale > 1 {
		sb := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, sb.Dx()*r.scale, sb.Dy()*r.scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, sb, draw.Src, nil)
		out = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
