package cloud

import (
	"math"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// Involute returns the point at angle theta on the involute of a circle with
// the given radius, relative to the circle's center.
func Involute(theta, radius float64) geom.Vector {
	sin, cos := math.Sincos(theta)
	return geom.Vector{
		X: radius * (cos + theta*sin),
		Y: radius * (sin - theta*cos),
	}
}

// maxReach bounds spiral candidates so positions convert to int without
// overflow whatever the spiral parameters.
const maxReach = 4 * errors.MaxExtent

// spiral returns the first candidate along the involute that overlaps no
// placed rectangle. The angle is derived from the step index rather than
// accumulated so it does not drift.
func (l *Layouter) spiral(size geom.Size, st *Stats) (geom.Rect, error) {
	half := size.Half()
	var prev geom.Point

	for i := 0; i < l.opts.MaxSpiralSteps; i++ {
		theta := float64(i) * l.opts.SpiralStep
		at := l.center.Add(Involute(theta, l.opts.SpiralRadius)).Sub(half)
		if math.Abs(at.X) > maxReach || math.Abs(at.Y) > maxReach {
			return geom.Rect{}, errors.New(errors.ErrCodeInternal,
				"spiral search for %v left the coordinate range after %d steps", size, i)
		}
		cand := geom.Rect{Min: geom.Round(at), Size: size}
		if i > 0 && cand.Min == prev {
			continue
		}
		prev = cand.Min

		st.SpiralSteps++
		if !l.intersects(cand) {
			return cand, nil
		}
	}
	return geom.Rect{}, errors.New(errors.ErrCodeInternal,
		"spiral search for %v exceeded %d steps with %d rectangles placed",
		size, l.opts.MaxSpiralSteps, len(l.rects))
}
