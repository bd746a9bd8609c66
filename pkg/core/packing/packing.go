// Package packing places sized rooms on a shared plane without overlap.
//
// Rooms are sorted by descending area and appended to an advancing cursor,
// so placement is collision-free by construction. The strategy depends on
// how many rooms there are:
//
//   - up to 4 rooms: rows of 2
//   - 5 or 6 rooms: an L-shape, a top row plus a right-aligned column
//   - more than 6: rows of 3
package packing

import (
	"math"
	"sort"

	"github.com/matzehuels/plansmith/pkg/core/plan"
)

// Strategy names a packing layout.
type Strategy string

// Packing strategies.
const (
	RowsOfTwo   Strategy = "rows-2"
	LShape      Strategy = "l-shape"
	RowsOfThree Strategy = "rows-3"
)

// StrategyFor selects the strategy for n rooms.
func StrategyFor(n int) Strategy {
	switch {
	case n <= 4:
		return RowsOfTwo
	case n <= 6:
		return LShape
	default:
		return RowsOfThree
	}
}

// Pack sorts rooms by descending area and places them with the strategy
// for their count. The input slice is not modified.
func Pack(rooms []plan.SizedRoom) []plan.PlacedRoom {
	sorted := SortByArea(rooms)
	switch StrategyFor(len(sorted)) {
	case RowsOfTwo:
		return Rows(sorted, 2)
	case LShape:
		return L(sorted)
	default:
		return Rows(sorted, 3)
	}
}

// SortByArea returns a copy of rooms ordered largest first. Rooms with equal
// area keep their relative order.
func SortByArea(rooms []plan.SizedRoom) []plan.SizedRoom {
	out := make([]plan.SizedRoom, len(rooms))
	copy(out, rooms)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Area > out[j].Area })
	return out
}

// Rows places rooms left to right, perRow at a time. Each new row starts at
// x=0 below the deepest room of the previous row.
func Rows(rooms []plan.SizedRoom, perRow int) []plan.PlacedRoom {
	if perRow < 1 {
		perRow = 1
	}
	out := make([]plan.PlacedRoom, 0, len(rooms))
	var x, y, rowMaxDepth float64
	for i, r := range rooms {
		if i > 0 && i%perRow == 0 {
			x = 0
			y += rowMaxDepth
			rowMaxDepth = 0
		}
		out = append(out, plan.PlacedRoom{SizedRoom: r, X: x, Y: y})
		x += r.Width
		rowMaxDepth = math.Max(rowMaxDepth, r.Depth)
	}
	return out
}

// L places the first ceil(n/2) rooms in a single top row and stacks the
// rest in a column under it, each right-aligned with the row's right edge.
// A room wider than the top row starts at x=0 instead.
func L(rooms []plan.SizedRoom) []plan.PlacedRoom {
	out := make([]plan.PlacedRoom, 0, len(rooms))
	top := int(math.Ceil(float64(len(rooms)) / 2))

	var x, topMaxDepth float64
	for _, r := range rooms[:top] {
		out = append(out, plan.PlacedRoom{SizedRoom: r, X: x, Y: 0})
		x += r.Width
		topMaxDepth = math.Max(topMaxDepth, r.Depth)
	}
	topWidth := x

	y := topMaxDepth
	for _, r := range rooms[top:] {
		out = append(out, plan.PlacedRoom{SizedRoom: r, X: math.Max(0, topWidth-r.Width), Y: y})
		y += r.Depth
	}
	return out
}
