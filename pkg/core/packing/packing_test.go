package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/program"
	"github.com/matzehuels/plansmith/pkg/core/sizing"
)

func sized(dims ...[2]float64) []plan.SizedRoom {
	out := make([]plan.SizedRoom, len(dims))
	for i, d := range dims {
		out[i] = plan.SizedRoom{Role: plan.Role{Type: plan.Bedroom}, Width: d[0], Depth: d[1], Area: d[0] * d[1]}
	}
	return out
}

func assertNoOverlap(t *testing.T, rooms []plan.PlacedRoom) {
	t.Helper()
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			assert.False(t, rooms[i].Rect().Overlaps(rooms[j].Rect()),
				"rooms %d and %d overlap: %+v %+v", i, j, rooms[i].Rect(), rooms[j].Rect())
		}
	}
}

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		n    int
		want Strategy
	}{
		{0, RowsOfTwo},
		{1, RowsOfTwo},
		{4, RowsOfTwo},
		{5, LShape},
		{6, LShape},
		{7, RowsOfThree},
		{11, RowsOfThree},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StrategyFor(tt.n), "n=%d", tt.n)
	}
}

func TestSortByAreaStable(t *testing.T) {
	in := sized([2]float64{2, 2}, [2]float64{3, 3}, [2]float64{1, 4}, [2]float64{4, 1})
	in[2].Name, in[3].Name = "first", "second"
	out := SortByArea(in)
	assert.Equal(t, 9.0, out[0].Area)
	assert.Equal(t, 2.0, out[1].Width)
	assert.Equal(t, "first", out[2].Name)
	assert.Equal(t, "second", out[3].Name)
	assert.Equal(t, 4.0, in[0].Area, "input must not be reordered")
}

func TestRowsOfTwo(t *testing.T) {
	rooms := Rows(sized([2]float64{6, 6}, [2]float64{4, 4.5}, [2]float64{2.5, 3}), 2)
	require.Len(t, rooms, 3)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{rooms[0].X, rooms[0].Y})
	assert.Equal(t, [2]float64{6, 0}, [2]float64{rooms[1].X, rooms[1].Y})
	assert.Equal(t, [2]float64{0, 6}, [2]float64{rooms[2].X, rooms[2].Y})
}

func TestRowsOfThreeAdvancesByDeepestRoom(t *testing.T) {
	rooms := Rows(sized(
		[2]float64{3, 4}, [2]float64{3, 5}, [2]float64{3, 3},
		[2]float64{2, 2},
	), 3)
	require.Len(t, rooms, 4)
	assert.Equal(t, 6.0, rooms[2].X)
	assert.Equal(t, 0.0, rooms[3].X)
	assert.Equal(t, 5.0, rooms[3].Y)
}

func TestLShape(t *testing.T) {
	rooms := L(sized(
		[2]float64{5, 5}, [2]float64{4, 4}, [2]float64{3, 4},
		[2]float64{3, 3}, [2]float64{2, 2},
	))
	require.Len(t, rooms, 5)

	// Top row: ceil(5/2) = 3 rooms.
	for _, r := range rooms[:3] {
		assert.Equal(t, 0.0, r.Y)
	}
	topWidth := 12.0

	assert.Equal(t, topWidth-3, rooms[3].X)
	assert.Equal(t, 5.0, rooms[3].Y)
	assert.Equal(t, topWidth-2, rooms[4].X)
	assert.Equal(t, 8.0, rooms[4].Y)
	assertNoOverlap(t, rooms)
}

func TestPackNoOverlapForEveryProgram(t *testing.T) {
	for _, bt := range plan.BuildingTypes {
		for n := 1; n <= 10; n++ {
			for _, size := range []float64{10, 45, 120, 300, 500} {
				alloc := sizing.Allocate(program.Resolve(bt, n), size)
				placed := Pack(alloc.Rooms)
				require.Len(t, placed, len(alloc.Rooms))
				assertNoOverlap(t, placed)
				for _, r := range placed {
					assert.GreaterOrEqual(t, r.X, 0.0)
					assert.GreaterOrEqual(t, r.Y, 0.0)
				}
			}
		}
	}
}

func TestPackEmpty(t *testing.T) {
	assert.Empty(t, Pack(nil))
	assert.Empty(t, L(nil))
}
