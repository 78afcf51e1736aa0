package render

import (
	"github.com/matzehuels/tagcloud/pkg/geom"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
)

// JSON encodes rects as a layout file. The center set with [WithCenter] is
// recorded; without it the center is written as the origin.
func JSON(rects []geom.Rect, opts ...Option) ([]byte, error) {
	if _, err := Bounds(rects); err != nil {
		return nil, err
	}
	r := newRenderer(opts...)
	l := pkgio.Layout{Rects: rects}
	if r.center != nil {
		l.Center = *r.center
	}
	return pkgio.MarshalLayout(l)
}
