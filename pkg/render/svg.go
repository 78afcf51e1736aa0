package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/tagcloud/pkg/geom"
)

// SVG renders rects as an SVG document sized to their bounding box.
// Rectangles appear in placement order, so later ones are drawn on top.
func SVG(rects []geom.Rect, opts ...Option) ([]byte, error) {
	b, err := Bounds(rects)
	if err != nil {
		return nil, err
	}
	r := newRenderer(opts...)

	style := "fill:" + hexColor(r.fill)
	if r.stroke != nil {
		style += ";stroke:" + hexColor(r.stroke) + ";stroke-width:1"
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(b.Size.Width, b.Size.Height)
	if r.background != nil {
		canvas.Rect(0, 0, b.Size.Width, b.Size.Height, "fill:"+hexColor(r.background))
	}

	offset := geom.Point{X: -b.Left(), Y: -b.Top()}
	canvas.Gid("cloud")
	for i, rect := range rects {
		rect = rect.Translate(offset)
		canvas.Rect(rect.Left(), rect.Top(), rect.Size.Width, rect.Size.Height,
			fmt.Sprintf(`id="rect-%d"`, i), fmt.Sprintf(`style="%s"`, style))
	}
	canvas.Gend()

	if r.center != nil {
		c := geom.Round(*r.center).Add(offset)
		canvas.Circle(c.X, c.Y, 1, "fill:#cc3333")
	}
	canvas.End()
	return buf.Bytes(), nil
}
