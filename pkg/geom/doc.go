// Package geom provides the geometry primitives used by the cloud layouter
// and the renderers.
//
// # Coordinate System
//
// All types use screen space: X grows to the right and Y grows downward.
// A [Rect] is anchored at its top-left corner ([Rect.Min]) and extends by its
// [Size]. Integer types ([Point], [Size], [Rect]) describe placed
// rectangles; the real-valued [Vector] is used for centers, spiral offsets
// and compaction steps.
//
// # Overlap
//
// [Rect.Intersects] reports a positive-area intersection. Rectangles that
// only share an edge or a corner do not intersect:
//
//	a := geom.Rect{Min: geom.Point{X: 0, Y: 0}, Size: geom.Size{Width: 2, Height: 2}}
//	b := geom.Rect{Min: geom.Point{X: 2, Y: 0}, Size: geom.Size{Width: 2, Height: 2}}
//	a.Intersects(b) // false: a and b touch along x=2
//
// # Bounding Boxes
//
// [Bounds] aggregates the tight bounding box over a rectangle collection and
// [Rect.ExpandTo] grows a box to include a point. Renderers use these to
// size their output buffers.
package geom
