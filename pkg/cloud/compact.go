package cloud

import (
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// compact pulls r toward the center: diagonally first, then along X, then
// along Y. Each pass starts from where the previous one stopped.
func (l *Layouter) compact(r geom.Rect, st *Stats) (geom.Rect, error) {
	var err error

	r, st.PressSteps[0], err = l.pressToward(r, l.center, l.opts.FirstPressStep)
	if err != nil {
		return geom.Rect{}, err
	}

	c := r.Center()
	r, st.PressSteps[1], err = l.pressToward(r, geom.Vec(l.center.X, c.Y), l.opts.PressStep)
	if err != nil {
		return geom.Rect{}, err
	}

	c = r.Center()
	r, st.PressSteps[2], err = l.pressToward(r, geom.Vec(c.X, l.center.Y), l.opts.PressStep)
	if err != nil {
		return geom.Rect{}, err
	}
	return r, nil
}

// pressToward moves r toward target in steps of the given length until the
// next step would overlap the layout or r's center is within one step of
// target. It returns the last overlap-free position and the number of
// committed steps.
//
// The position is tracked in real coordinates and rounded per step, so a
// shallow direction still makes progress along its minor axis.
func (l *Layouter) pressToward(r geom.Rect, target geom.Vector, step float64) (geom.Rect, int, error) {
	half := r.Size.Half()
	pos := r.Min.Vector()

	if geom.Distance(pos.Add(half), target) <= step {
		return r, 0, nil
	}
	dir, ok := geom.Normalize(target.Sub(pos.Add(half)))
	if !ok {
		return r, 0, nil
	}
	delta := dir.Mul(step)

	free := r
	for n := 0; n < l.opts.MaxPressSteps; n++ {
		if geom.Distance(pos.Add(half), target) <= step {
			return free, n, nil
		}
		pos = pos.Add(delta)
		cand := geom.Rect{Min: geom.Round(pos), Size: r.Size}
		if l.intersects(cand) {
			return free, n, nil
		}
		free = cand
	}
	return geom.Rect{}, 0, errors.New(errors.ErrCodeInternal,
		"compaction of %v toward (%.2f,%.2f) exceeded %d steps",
		r, target.X, target.Y, l.opts.MaxPressSteps)
}
