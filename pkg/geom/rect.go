package geom

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Min  Point
	Size Size
}

// R builds a rectangle from its top-left corner and dimensions.
func R(x, y, w, h int) Rect {
	return Rect{Min: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Left returns the smallest X covered by r.
func (r Rect) Left() int { return r.Min.X }

// Top returns the smallest Y covered by r.
func (r Rect) Top() int { return r.Min.Y }

// Right returns the X just past r's right edge.
func (r Rect) Right() int { return r.Min.X + r.Size.Width }

// Bottom returns the Y just past r's bottom edge.
func (r Rect) Bottom() int { return r.Min.Y + r.Size.Height }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Center returns the real-valued center of r.
func (r Rect) Center() Vector {
	return r.Min.Vector().Add(r.Size.Half())
}

// Empty reports whether r has zero area.
func (r Rect) Empty() bool { return r.Size.Width <= 0 || r.Size.Height <= 0 }

// Intersects reports whether r and o overlap with positive area.
// Shared edges and corners do not count.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Contains reports whether p lies inside r, including its edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Corners returns the four corners of r: top-left, top-right, bottom-left,
// bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Right(), Y: r.Top()},
		{X: r.Left(), Y: r.Bottom()},
		r.Max(),
	}
}

// ExpandTo returns the smallest rectangle containing both r and p.
func (r Rect) ExpandTo(p Point) Rect {
	left, top := min(r.Left(), p.X), min(r.Top(), p.Y)
	right, bottom := max(r.Right(), p.X), max(r.Bottom(), p.Y)
	return Rect{
		Min:  Point{X: left, Y: top},
		Size: Size{Width: right - left, Height: bottom - top},
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return r.ExpandTo(o.Min).ExpandTo(o.Max())
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Size: r.Size}
}

// Box converts r to a real-valued box. LL holds the top-left corner and UR
// the bottom-right one, since Y grows downward in screen space.
func (r Rect) Box() rect.Rect {
	return rect.Rect{
		LLx: float64(r.Left()),
		LLy: float64(r.Top()),
		URx: float64(r.Right()),
		URy: float64(r.Bottom()),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Min, r.Size)
}

// Bounds returns the tight bounding box over all corners of rects.
// The second result is false when rects is empty.
func Bounds(rects []Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}
	b := Rect{Min: rects[0].Min}
	for _, r := range rects {
		for _, c := range r.Corners() {
			b = b.ExpandTo(c)
		}
	}
	return b, true
}

// IntersectsAny reports whether r overlaps any rectangle in rects.
func IntersectsAny(r Rect, rects []Rect) bool {
	for _, o := range rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
