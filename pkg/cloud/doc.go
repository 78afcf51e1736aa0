// Package cloud places rectangles around a common center so that no two of
// them overlap and the cluster stays compact and roughly circular, the
// classic tag-cloud layout.
//
// # Overview
//
// A [Layouter] owns an ordered list of placed rectangles and the point it
// packs around. Each call to [Layouter.Place] computes a position for one new
// rectangle, appends it, and returns it:
//
//	l := cloud.New(geom.Pt(0, 0))
//	for _, s := range sizes {
//	    r, err := l.Place(s)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(r)
//	}
//
// Placed rectangles never move. [Layouter.Recenter] only affects later
// placements.
//
// # Limits
//
// Sizes are bounded by errors.MaxExtent in each dimension and the center by
// ±errors.MaxExtent on each axis. Place rejects anything larger with
// INVALID_SIZE or INVALID_INPUT, so rectangle edges never overflow int.
//
// # Placement
//
// Placement runs in two phases.
//
// Spiral search walks the involute of a circle,
//
//	p(θ) = r·(cos θ + θ·sin θ, sin θ − θ·cos θ)
//
// starting at θ = 0 and advancing by a fixed angle step. The candidate is
// centered on center + p(θ) and the first position that overlaps nothing is
// kept. Angles whose rounded position repeats the previous one are skipped
// without scanning the layout.
//
// Compaction then pulls the candidate toward the center in three passes:
// diagonally toward the center, horizontally toward the center's X, and
// vertically toward the center's Y. Each pass moves in fixed steps, checks
// every tentative position against the full layout, and stops at the last
// overlap-free position or once it is within one step of its target. The
// first rectangle of a layout skips compaction.
//
// # Options
//
// The spiral radius, angle step, compaction steps and the iteration ceilings
// are configurable with [WithSpiral], [WithPressSteps], [WithMaxSpiralSteps]
// and [WithMaxPressSteps]. Defaults are listed on [DefaultOptions]. The
// ceilings should never be reached; hitting one, or a spiral so wide its
// candidates leave the coordinate range, returns an INTERNAL_ERROR (see
// package errors) and leaves the layout unchanged.
//
// # Concurrency
//
// A Layouter is not safe for concurrent use. Each placement depends on all
// previous ones, so parallel callers need their own Layouter.
package cloud
