package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
)

// LayoutStats sums the per-placement work of a layout run.
type LayoutStats struct {
	SpiralSteps int
	PressSteps  int
}

// GenerateLayout places opts.Sizes in order around opts.Center.
// Cancellation is checked between placements.
func GenerateLayout(ctx context.Context, opts Options) (pkgio.Layout, LayoutStats, error) {
	var st LayoutStats
	l := cloud.New(opts.CenterPoint(), opts.CloudOptions()...)

	for i, size := range opts.Sizes {
		if err := ctx.Err(); err != nil {
			return pkgio.Layout{}, st, err
		}
		if _, err := l.Place(size); err != nil {
			return pkgio.Layout{}, st, fmt.Errorf("rect %d: %w", i, err)
		}
		ps := l.LastStats()
		st.SpiralSteps += ps.SpiralSteps
		for _, n := range ps.PressSteps {
			st.PressSteps += n
		}
	}

	return pkgio.Layout{Center: l.Center(), Rects: l.Rects()}, st, nil
}
