// Package geom provides the small amount of planar geometry the floor plan
// synthesizer needs: points, axis-aligned rectangles, a single tolerance
// for approximate comparisons, and a comparable canonical key for wall
// segments.
//
// # Tolerance
//
// All adjacency matching goes through [ApproxEqual] with [Tolerance]. Keep
// literals out of callers so the tolerance can be tuned in one place.
//
// # Segment keys
//
// [SegmentKey] normalizes a segment so that direction does not matter and
// quantizes coordinates to centimeters. Two segments with the same key are
// the same wall:
//
//	a := geom.KeyOf(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0})
//	b := geom.KeyOf(geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 0})
//	a == b // true
package geom
