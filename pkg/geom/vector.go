package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Vector is a real-valued 2D vector used for centers and displacements.
type Vector = vec.Vec2

// Vec is shorthand for constructing a Vector.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

// Normalize returns v scaled to unit length.
// The second result is false for a zero-length (or non-finite) v, in which
// case the zero vector is returned and callers must not use it as a direction.
func Normalize(v Vector) (Vector, bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vector{}, false
	}
	return v.Mul(1 / l), true
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector) float64 {
	return a.Sub(b).Length()
}

// Round rounds both components of v to the nearest integer, halves away from
// zero.
func Round(v Vector) Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// IsFinite reports whether neither component is NaN or infinite.
func IsFinite(v Vector) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
