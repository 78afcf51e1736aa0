package cloud

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geom"
	"github.com/matzehuels/tagcloud/pkg/render"
)

// requireDisjoint fails the test if any two rectangles overlap and saves a
// PNG of the layout for inspection.
func requireDisjoint(t *testing.T, rects []geom.Rect) {
	t.Helper()
	failed := false
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				t.Errorf("rect %d %v overlaps rect %d %v", i, rects[i], j, rects[j])
				failed = true
			}
		}
	}
	if failed {
		saveDiagnostic(t, rects)
	}
}

func saveDiagnostic(t *testing.T, rects []geom.Rect) {
	t.Helper()
	data, err := render.PNG(rects, render.WithScale(4))
	if err != nil {
		t.Logf("render diagnostic: %v", err)
		return
	}
	// Not t.TempDir: the PNG has to outlive the failing test to be inspected.
	dir, err := os.MkdirTemp("", "tagcloud-diag-")
	if err != nil {
		t.Logf("create diagnostic dir: %v", err)
		return
	}
	path := filepath.Join(dir, filepath.Base(t.Name())+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Logf("write diagnostic: %v", err)
		return
	}
	t.Logf("layout saved to %s", path)
}

func placeAll(t *testing.T, l *Layouter, sizes []geom.Size) []geom.Rect {
	t.Helper()
	out := make([]geom.Rect, 0, len(sizes))
	for i, s := range sizes {
		r, err := l.Place(s)
		if err != nil {
			t.Fatalf("Place(%v) #%d error: %v", s, i, err)
		}
		out = append(out, r)
	}
	return out
}

func repeat(s geom.Size, n int) []geom.Size {
	out := make([]geom.Size, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func TestPlaceReturnsRequestedSize(t *testing.T) {
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for w := 1; w <= 2; w++ {
				for h := 1; h <= 2; h++ {
					center, size := geom.Pt(x, y), geom.Sz(w, h)
					t.Run(fmt.Sprintf("center %v size %v", center, size), func(t *testing.T) {
						l := New(center)
						r, err := l.Place(size)
						if err != nil {
							t.Fatalf("Place() error: %v", err)
						}
						if r.Size != size {
							t.Errorf("Place() size = %v, want %v", r.Size, size)
						}
					})
				}
			}
		}
	}
}

func TestPlaceNonOverlapping(t *testing.T) {
	tests := []struct {
		name  string
		size  geom.Size
		count int
	}{
		{"squares 2x2", geom.Sz(2, 2), 10},
		{"wide 10x3", geom.Sz(10, 3), 10},
		{"tall 3x10", geom.Sz(3, 10), 10},
		{"strip 1x10", geom.Sz(1, 10), 10},
		{"unit 1x1", geom.Sz(1, 1), 10},
		{"many squares", geom.Sz(3, 3), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(geom.Pt(0, 0))
			rects := placeAll(t, l, repeat(tt.size, tt.count))
			requireDisjoint(t, rects)
			for _, r := range rects {
				if r.Size != tt.size {
					t.Errorf("placed size = %v, want %v", r.Size, tt.size)
				}
			}
		})
	}
}

func TestPlaceMixedSizes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sizes := make([]geom.Size, 150)
	for i := range sizes {
		sizes[i] = geom.Sz(1+rng.IntN(20), 1+rng.IntN(8))
	}

	for _, center := range []geom.Point{geom.Pt(0, 0), geom.Pt(-37, 12), geom.Pt(500, -500)} {
		t.Run(center.String(), func(t *testing.T) {
			l := New(center)
			rects := placeAll(t, l, sizes)
			requireDisjoint(t, rects)
			if l.Len() != len(sizes) {
				t.Errorf("Len() = %d, want %d", l.Len(), len(sizes))
			}
		})
	}
}

func TestPlaceInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		size geom.Size
	}{
		{"zero width", geom.Sz(0, 3)},
		{"zero height", geom.Sz(3, 0)},
		{"negative width", geom.Sz(-1, 1)},
		{"negative height", geom.Sz(1, -1)},
		{"both negative", geom.Sz(-1, -1)},
		{"both zero", geom.Sz(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(geom.Pt(5, 5))
			if _, err := l.Place(geom.Sz(2, 2)); err != nil {
				t.Fatalf("Place() error: %v", err)
			}

			_, err := l.Place(tt.size)
			if !errors.Is(err, errors.ErrCodeInvalidSize) {
				t.Fatalf("Place(%v) error = %v, want %s", tt.size, err, errors.ErrCodeInvalidSize)
			}
			if l.Len() != 1 {
				t.Errorf("Len() = %d after rejected placement, want 1", l.Len())
			}
		})
	}
}

func TestFirstPlacementNearCenter(t *testing.T) {
	for _, center := range []geom.Point{geom.Pt(0, 0), geom.Pt(5, 5), geom.Pt(-20, 7)} {
		t.Run(center.String(), func(t *testing.T) {
			l := New(center)
			r, err := l.Place(geom.Sz(7, 3))
			if err != nil {
				t.Fatalf("Place() error: %v", err)
			}

			// θ = 0 lands one radius to the right; rounding adds at most √0.5.
			if d := geom.Distance(r.Center(), center.Vector()); d > DefaultSpiralRadius+math.Sqrt2/2 {
				t.Errorf("first rectangle center %v is %.2f from %v", r.Center(), d, center)
			}

			st := l.LastStats()
			if st.SpiralSteps != 1 {
				t.Errorf("SpiralSteps = %d, want 1", st.SpiralSteps)
			}
			if st.PressSteps != [3]int{} {
				t.Errorf("PressSteps = %v, want none for the first placement", st.PressSteps)
			}
		})
	}
}

func TestPlaceDeterministic(t *testing.T) {
	sizes := []geom.Size{
		geom.Sz(12, 4), geom.Sz(3, 3), geom.Sz(8, 2), geom.Sz(1, 9),
		geom.Sz(5, 5), geom.Sz(20, 6), geom.Sz(2, 2), geom.Sz(6, 1),
	}
	sizes = append(sizes, sizes...)

	first := placeAll(t, New(geom.Pt(3, -4)), sizes)
	for run := 0; run < 3; run++ {
		again := placeAll(t, New(geom.Pt(3, -4)), sizes)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d: layout differs (-first +again):\n%s", run, diff)
		}
	}
}

func TestRecenter(t *testing.T) {
	l := New(geom.Pt(0, 0))
	first, err := l.Place(geom.Sz(4, 4))
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	l.Recenter(geom.Pt(100, 100))
	if got := l.Center(); got != geom.Vec(100, 100) {
		t.Errorf("Center() = %v, want (100,100)", got)
	}
	if got := l.Rects()[0]; got != first {
		t.Errorf("Recenter moved an existing rectangle: %v -> %v", first, got)
	}

	second, err := l.Place(geom.Sz(4, 4))
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if d := geom.Distance(second.Center(), geom.Vec(100, 100)); d > 2 {
		t.Errorf("placement after Recenter is %.2f away from the new center", d)
	}
	requireDisjoint(t, l.Rects())
}

func TestRectsIsCopy(t *testing.T) {
	l := New(geom.Pt(0, 0))
	placeAll(t, l, repeat(geom.Sz(2, 2), 3))

	rects := l.Rects()
	rects[0] = geom.R(1000, 1000, 1, 1)
	if l.Rects()[0] == rects[0] {
		t.Error("mutating Rects() result changed the layout")
	}
}

func TestCompactness(t *testing.T) {
	const n = 50
	l := New(geom.Pt(0, 0))
	rects := placeAll(t, l, repeat(geom.Sz(4, 4), n))
	requireDisjoint(t, rects)

	// A perfect disc of 50 4x4 squares has a radius of about 16.
	for i, r := range rects {
		if d := r.Center().Length(); d > 40 {
			t.Errorf("rect %d %v is %.1f from the center", i, r, d)
		}
	}
}

func TestSpiralCeiling(t *testing.T) {
	l := New(geom.Pt(0, 0), WithMaxSpiralSteps(1))
	if _, err := l.Place(geom.Sz(2, 2)); err != nil {
		t.Fatalf("first Place() error: %v", err)
	}

	_, err := l.Place(geom.Sz(2, 2))
	if !errors.IsInternal(err) {
		t.Fatalf("Place() error = %v, want %s", err, errors.ErrCodeInternal)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d after internal error, want 1", l.Len())
	}
}

func TestCompactionCeiling(t *testing.T) {
	// Tenth-unit steps never change the rounded position on the first move,
	// so the second placement always needs more than one press step.
	l := New(geom.Pt(0, 0), WithPressSteps(0.1, 0.1), WithMaxPressSteps(1))
	if _, err := l.Place(geom.Sz(2, 2)); err != nil {
		t.Fatalf("first Place() error: %v", err)
	}

	_, err := l.Place(geom.Sz(2, 2))
	if !errors.IsInternal(err) {
		t.Fatalf("Place() error = %v, want %s", err, errors.ErrCodeInternal)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d after internal error, want 1", l.Len())
	}
}

func TestPlaceOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		center geom.Point
		size   geom.Size
		want   errors.Code
	}{
		{"oversized width", geom.Pt(0, 0), geom.Sz(errors.MaxExtent+1, 4), errors.ErrCodeInvalidSize},
		{"oversized height", geom.Pt(0, 0), geom.Sz(4, errors.MaxExtent+1), errors.ErrCodeInvalidSize},
		{"overflowing size", geom.Pt(3<<61, 0), geom.Sz(1<<62, 4), errors.ErrCodeInvalidSize},
		{"far center x", geom.Pt(3<<61, 0), geom.Sz(4, 4), errors.ErrCodeInvalidInput},
		{"far center y", geom.Pt(0, -errors.MaxExtent-1), geom.Sz(4, 4), errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.center)
			for i := 0; i < 2; i++ {
				_, err := l.Place(tt.size)
				if !errors.Is(err, tt.want) {
					t.Fatalf("Place(%v) #%d error = %v, want %s", tt.size, i, err, tt.want)
				}
			}
			if l.Len() != 0 {
				t.Errorf("Len() = %d after rejected placements, want 0", l.Len())
			}
		})
	}
}

func TestRecenterOutOfRange(t *testing.T) {
	l := New(geom.Pt(0, 0))
	if _, err := l.Place(geom.Sz(4, 4)); err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	l.Recenter(geom.Pt(errors.MaxExtent+1, 0))
	if _, err := l.Place(geom.Sz(4, 4)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("Place() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	l.Recenter(geom.Pt(errors.MaxExtent, -errors.MaxExtent))
	r, err := l.Place(geom.Sz(errors.MaxExtent, errors.MaxExtent))
	if err != nil {
		t.Fatalf("Place() at the edge of the range error: %v", err)
	}
	if r.Right() <= r.Left() || r.Bottom() <= r.Top() {
		t.Errorf("placed rect %v has inverted edges", r)
	}
	requireDisjoint(t, l.Rects())
}

func TestSpiralLeavesRange(t *testing.T) {
	l := New(geom.Pt(0, 0), WithSpiral(8*errors.MaxExtent, DefaultSpiralStep))
	_, err := l.Place(geom.Sz(2, 2))
	if !errors.IsInternal(err) {
		t.Fatalf("Place() error = %v, want %s", err, errors.ErrCodeInternal)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after internal error, want 0", l.Len())
	}
}

func TestOptionsSanitize(t *testing.T) {
	l := New(geom.Pt(0, 0),
		WithSpiral(-1, math.NaN()),
		WithPressSteps(0, math.Inf(1)),
		WithMaxSpiralSteps(-5),
		WithMaxPressSteps(0),
	)
	got, want := l.Options(), DefaultOptions()
	if got != want {
		t.Errorf("Options() = %+v, want defaults %+v", got, want)
	}

	custom := New(geom.Pt(0, 0), WithSpiral(2, 0.1), WithPressSteps(3, 2)).Options()
	if custom.SpiralRadius != 2 || custom.SpiralStep != 0.1 || custom.FirstPressStep != 3 || custom.PressStep != 2 {
		t.Errorf("custom options not applied: %+v", custom)
	}
}

func TestCustomOptionsStayDisjoint(t *testing.T) {
	l := New(geom.Pt(0, 0), WithSpiral(0.5, math.Pi/40), WithPressSteps(1, 0.5))
	rects := placeAll(t, l, repeat(geom.Sz(5, 2), 40))
	requireDisjoint(t, rects)
}
