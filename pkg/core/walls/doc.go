// Package walls derives the wall graph of a packed floor plan and classifies
// each wall as interior or exterior.
//
// # Synthesis
//
// [Synthesize] emits the top, right, bottom and left boundary of every room
// and drops any segment whose canonical key ([geom.SegmentKey]) was already
// emitted. Two rooms sharing an identical edge therefore share one wall.
// Edges that only partly coincide stay separate walls.
//
// # Classification
//
// [Classify] tests each wall's midpoint against every room's edges using
// [geom.Tolerance]. A wall touched by two or more rooms is interior; one
// touched by at most one room is exterior. Every synthesized wall touches at
// least the room that produced it.
package walls
