package geom

import "fmt"

// Point is an integer screen-space coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Vector converts p to a real-valued vector.
func (p Point) Vector() Vector { return Vector{X: float64(p.X), Y: float64(p.Y)} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is an integer width and height.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size { return Size{Width: w, Height: h} }

// Valid reports whether both dimensions are strictly positive.
func (s Size) Valid() bool { return s.Width > 0 && s.Height > 0 }

// Empty reports whether s has zero area.
func (s Size) Empty() bool { return s.Width == 0 || s.Height == 0 }

// Half returns half of s as a real vector. Odd dimensions keep their
// fractional half.
func (s Size) Half() Vector { return Vector{X: float64(s.Width) / 2, Y: float64(s.Height) / 2} }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }
