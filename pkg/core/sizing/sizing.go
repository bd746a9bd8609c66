// Package sizing assigns each room role a width and depth from a weighted
// share of the requested total area.
//
// Sizing clamps twice: first the target area to the role's standard area
// range, then each dimension to the role's width and depth range. Extreme
// room counts can therefore produce a total area that differs from the
// request; [Allocation.Deviation] reports by how much.
package sizing

import (
	"math"

	"github.com/matzehuels/plansmith/pkg/core/geom"
	"github.com/matzehuels/plansmith/pkg/core/plan"
)

// Step is the grid dimensions are rounded to, in meters.
const Step = 0.5

// Range bounds a room type's width and depth in meters.
type Range struct {
	MinWidth, MaxWidth float64
	MinDepth, MaxDepth float64
}

// MinArea is the smallest standard area.
func (r Range) MinArea() float64 { return r.MinWidth * r.MinDepth }

// MaxArea is the largest standard area.
func (r Range) MaxArea() float64 { return r.MaxWidth * r.MaxDepth }

// AvgRatio is the width/depth ratio of the range's average dimensions.
func (r Range) AvgRatio() float64 {
	return ((r.MinWidth + r.MaxWidth) / 2) / ((r.MinDepth + r.MaxDepth) / 2)
}

// Ranges holds the standard size range of every room type.
var Ranges = map[plan.RoomType]Range{
	plan.Living:   {MinWidth: 4.0, MaxWidth: 6.0, MinDepth: 4.0, MaxDepth: 6.0},
	plan.Bedroom:  {MinWidth: 3.0, MaxWidth: 4.0, MinDepth: 3.5, MaxDepth: 5.0},
	plan.Kitchen:  {MinWidth: 2.5, MaxWidth: 4.0, MinDepth: 3.0, MaxDepth: 4.5},
	plan.Dining:   {MinWidth: 3.0, MaxWidth: 4.5, MinDepth: 3.0, MaxDepth: 4.5},
	plan.Office:   {MinWidth: 2.5, MaxWidth: 4.0, MinDepth: 3.0, MaxDepth: 4.0},
	plan.Bathroom: {MinWidth: 1.5, MaxWidth: 2.5, MinDepth: 2.0, MaxDepth: 3.0},
	plan.Laundry:  {MinWidth: 1.5, MaxWidth: 2.5, MinDepth: 1.5, MaxDepth: 2.5},
	plan.Hallway:  {MinWidth: 1.0, MaxWidth: 1.5, MinDepth: 3.0, MaxDepth: 6.0},
}

// Weights is each room type's relative claim on the total area.
var Weights = map[plan.RoomType]float64{
	plan.Living:   1.5,
	plan.Bedroom:  1.2,
	plan.Kitchen:  1.0,
	plan.Dining:   1.0,
	plan.Office:   0.8,
	plan.Bathroom: 0.5,
	plan.Laundry:  0.4,
	plan.Hallway:  0.3,
}

// RangeFor returns the standard range for t. Unknown types get the bedroom
// range so that every role still receives a usable size.
func RangeFor(t plan.RoomType) Range {
	if r, ok := Ranges[t]; ok {
		return r
	}
	return Ranges[plan.Bedroom]
}

// weightFor returns the allocation weight for t, 1.0 for unknown types.
func weightFor(t plan.RoomType) float64 {
	if w, ok := Weights[t]; ok {
		return w
	}
	return 1.0
}

// Allocation is the result of sizing a room program.
type Allocation struct {
	Rooms     []plan.SizedRoom
	Requested float64
	Allocated float64
}

// Deviation returns |allocated-requested| / requested, or 0 when nothing
// was requested.
func (a Allocation) Deviation() float64 {
	if a.Requested <= 0 {
		return 0
	}
	return math.Abs(a.Allocated-a.Requested) / a.Requested
}

// Allocate sizes every role against totalArea. Output order follows roles.
func Allocate(roles []plan.Role, totalArea float64) Allocation {
	var weightSum float64
	for _, r := range roles {
		weightSum += weightFor(r.Type)
	}

	out := Allocation{Rooms: make([]plan.SizedRoom, 0, len(roles)), Requested: totalArea}
	for _, r := range roles {
		target := 0.0
		if weightSum > 0 {
			target = weightFor(r.Type) / weightSum * totalArea
		}
		sized := Size(r, target)
		out.Rooms = append(out.Rooms, sized)
		out.Allocated += sized.Area
	}
	return out
}

// Size derives a role's dimensions from a target area. The area is clamped
// to the role's standard range, split by the range's average aspect ratio,
// and each side clamped and rounded to [Step].
func Size(role plan.Role, targetArea float64) plan.SizedRoom {
	rng := RangeFor(role.Type)
	area := geom.Clamp(targetArea, rng.MinArea(), rng.MaxArea())

	width := geom.Clamp(math.Sqrt(area*rng.AvgRatio()), rng.MinWidth, rng.MaxWidth)
	depth := geom.Clamp(area/width, rng.MinDepth, rng.MaxDepth)

	width = geom.RoundTo(width, Step)
	depth = geom.RoundTo(depth, Step)

	return plan.SizedRoom{Role: role, Width: width, Depth: depth, Area: width * depth}
}
