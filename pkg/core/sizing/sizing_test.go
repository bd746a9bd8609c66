package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/program"
)

func onGrid(v float64) bool {
	return math.Abs(v/Step-math.Round(v/Step)) < 1e-9
}

func TestEveryRoomTypeHasTables(t *testing.T) {
	for _, rt := range plan.RoomTypes {
		_, ok := Ranges[rt]
		assert.True(t, ok, "missing range for %s", rt)
		_, ok = Weights[rt]
		assert.True(t, ok, "missing weight for %s", rt)
	}
}

func TestSizeWithinRange(t *testing.T) {
	for _, rt := range plan.RoomTypes {
		rng := Ranges[rt]
		for _, target := range []float64{0, 1, 5, 12, 20, 35, 80, 500} {
			s := Size(plan.Role{Type: rt}, target)
			assert.GreaterOrEqual(t, s.Width, rng.MinWidth, "%s@%v width", rt, target)
			assert.LessOrEqual(t, s.Width, rng.MaxWidth, "%s@%v width", rt, target)
			assert.GreaterOrEqual(t, s.Depth, rng.MinDepth, "%s@%v depth", rt, target)
			assert.LessOrEqual(t, s.Depth, rng.MaxDepth, "%s@%v depth", rt, target)
			assert.True(t, onGrid(s.Width) && onGrid(s.Depth), "%s@%v not on grid: %vx%v", rt, target, s.Width, s.Depth)
			assert.InDelta(t, s.Width*s.Depth, s.Area, 1e-9)
		}
	}
}

func TestSizeKnownValues(t *testing.T) {
	tests := []struct {
		role   plan.RoomType
		target float64
		width  float64
		depth  float64
	}{
		{plan.Living, 35, 6.0, 6.0},
		{plan.Kitchen, 70.0 / 3, 4.0, 4.5},
		{plan.Bathroom, 70.0 / 6, 2.5, 3.0},
		{plan.Living, 10, 4.0, 4.0},
	}
	for _, tt := range tests {
		s := Size(plan.Role{Type: tt.role}, tt.target)
		assert.Equal(t, tt.width, s.Width, "%s width", tt.role)
		assert.Equal(t, tt.depth, s.Depth, "%s depth", tt.role)
	}
}

func TestAllocatePreservesOrder(t *testing.T) {
	roles := program.Resolve(plan.House, 6)
	alloc := Allocate(roles, 120)
	require.Len(t, alloc.Rooms, len(roles))
	for i, r := range alloc.Rooms {
		assert.Equal(t, roles[i], r.Role)
	}
	assert.Equal(t, 120.0, alloc.Requested)
}

func TestAllocateSumsArea(t *testing.T) {
	alloc := Allocate(program.Resolve(plan.Apartment, 5), 90)
	var sum float64
	for _, r := range alloc.Rooms {
		sum += r.Area
	}
	assert.InDelta(t, sum, alloc.Allocated, 1e-9)
}

func TestAllocateDivergesAtExtremes(t *testing.T) {
	// Ten rooms cannot fit in 10 m² once every room is clamped to its
	// minimum standard size.
	alloc := Allocate(program.Resolve(plan.House, 10), 10)
	assert.Greater(t, alloc.Allocated, alloc.Requested)
	assert.Greater(t, alloc.Deviation(), 1.0)
}

func TestAllocateEmpty(t *testing.T) {
	alloc := Allocate(nil, 100)
	assert.Empty(t, alloc.Rooms)
	assert.Zero(t, alloc.Allocated)
	assert.Zero(t, Allocation{}.Deviation())
}
