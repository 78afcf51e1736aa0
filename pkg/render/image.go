package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// Bounds returns the tight bounding box of rects, or EMPTY_LAYOUT if there is
// nothing to draw.
func Bounds(rects []geom.Rect) (geom.Rect, error) {
	b, ok := geom.Bounds(rects)
	if !ok || b.Empty() {
		return geom.Rect{}, errors.New(errors.ErrCodeEmptyLayout, "layout must contain at least one rectangle")
	}
	return b, nil
}

// MaxPixels bounds the pixel count of a raster canvas, upscaling included.
const MaxPixels = 1 << 26

// canvasBounds is [Bounds] for raster output. A canvas of more than
// MaxPixels at the given scale fails with INVALID_SIZE.
func canvasBounds(rects []geom.Rect, scale int) (geom.Rect, error) {
	b, err := Bounds(rects)
	if err != nil {
		return geom.Rect{}, err
	}
	s := float64(scale)
	if float64(b.Size.Width)*float64(b.Size.Height)*s*s > MaxPixels {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidSize,
			"canvas %v at scale %d exceeds %d pixels", b.Size, scale, MaxPixels)
	}
	return b, nil
}

// Image rasterises rects into a buffer exactly the size of their bounding
// box. Pixel (0,0) corresponds to the bounding box's top-left corner.
// Layouts whose box exceeds [MaxPixels] fail with INVALID_SIZE.
func Image(rects []geom.Rect, opts ...Option) (*image.RGBA, error) {
	b, err := canvasBounds(rects, 1)
	if err != nil {
		return nil, err
	}
	r := newRenderer(opts...)
	return r.rasterise(rects, b), nil
}

func (r renderer) rasterise(rects []geom.Rect, b geom.Rect) *image.RGBA {
	w, h := b.Size.Width, b.Size.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if r.background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	}

	offset := geom.Point{X: -b.Left(), Y: -b.Top()}
	fill := image.NewUniform(r.fill)
	z := vector.NewRasterizer(w, h)
	for _, rect := range rects {
		rect = rect.Translate(offset)
		z.Reset(w, h)
		x0, y0 := float32(rect.Left()), float32(rect.Top())
		x1, y1 := float32(rect.Right()), float32(rect.Bottom())
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
		z.Draw(img, img.Bounds(), fill, image.Point{})

		if r.stroke != nil {
			outline(img, rect, r.stroke)
		}
	}
	return img
}

// outline draws a one-pixel border along the inside of rect.
func outline(img draw.Image, rect geom.Rect, c color.Color) {
	src := image.NewUniform(c)
	x0, y0, x1, y1 := rect.Left(), rect.Top(), rect.Right(), rect.Bottom()
	edges := []image.Rectangle{
		image.Rect(x0, y0, x1, y0+1),
		image.Rect(x0, y1-1, x1, y1),
		image.Rect(x0, y0, x0+1, y1),
		image.Rect(x1-1, y0, x1, y1),
	}
	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Over)
	}
}
