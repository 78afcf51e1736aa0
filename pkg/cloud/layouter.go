package cloud

import (
	"slices"
	"time"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
)

// Layouter incrementally places rectangles around a center point.
type Layouter struct {
	center geom.Vector
	rects  []geom.Rect
	opts   Options
	last   Stats
}

// Stats describes the work done by the most recent placement.
type Stats struct {
	// SpiralSteps counts spiral candidates that were checked against the
	// layout. Skipped duplicate positions are not counted.
	SpiralSteps int

	// PressSteps counts committed moves of the diagonal, horizontal and
	// vertical compaction passes, in that order.
	PressSteps [3]int

	Duration time.Duration
}

// New returns a Layouter with an empty layout packing around center.
func New(center geom.Point, opts ...Option) *Layouter {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.sanitize()
	return &Layouter{center: center.Vector(), opts: o}
}

// Place computes a position for a rectangle of the given size, appends it to
// the layout and returns it. The result overlaps no previously placed
// rectangle.
//
// Place fails with INVALID_SIZE for a width or height outside
// (0, errors.MaxExtent], with INVALID_INPUT if the center lies outside
// ±errors.MaxExtent and with INTERNAL_ERROR if an iteration ceiling is hit.
// The layout is unchanged on error.
func (l *Layouter) Place(size geom.Size) (geom.Rect, error) {
	if err := errors.ValidateSize(size.Width, size.Height); err != nil {
		return geom.Rect{}, err
	}
	c := geom.Round(l.center)
	if err := errors.ValidateCenter(c.X, c.Y); err != nil {
		return geom.Rect{}, err
	}

	start := time.Now()
	var st Stats

	r, err := l.spiral(size, &st)
	if err != nil {
		return geom.Rect{}, err
	}
	if len(l.rects) > 0 {
		if r, err = l.compact(r, &st); err != nil {
			return geom.Rect{}, err
		}
	}

	l.rects = append(l.rects, r)
	st.Duration = time.Since(start)
	l.last = st

	if l.opts.Logger != nil {
		l.opts.Logger.Debug("placed rectangle",
			"index", len(l.rects)-1,
			"rect", r,
			"spiral", st.SpiralSteps,
			"press", st.PressSteps,
			"duration", st.Duration)
	}
	return r, nil
}

// Recenter changes the point later placements pack around. Rectangles that
// are already placed do not move. A center outside ±errors.MaxExtent is
// reported by the next Place.
func (l *Layouter) Recenter(center geom.Point) {
	l.center = center.Vector()
}

// Center returns the current center.
func (l *Layouter) Center() geom.Vector { return l.center }

// Rects returns a copy of the placed rectangles in placement order.
func (l *Layouter) Rects() []geom.Rect { return slices.Clone(l.rects) }

// Len returns the number of placed rectangles.
func (l *Layouter) Len() int { return len(l.rects) }

// LastStats returns statistics about the most recent successful placement.
func (l *Layouter) LastStats() Stats { return l.last }

// Options returns the effective placement parameters.
func (l *Layouter) Options() Options { return l.opts }

// intersects reports whether r overlaps any placed rectangle.
func (l *Layouter) intersects(r geom.Rect) bool {
	return geom.IntersectsAny(r, l.rects)
}
