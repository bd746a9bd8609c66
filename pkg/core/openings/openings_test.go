package openings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/plansmith/pkg/core/packing"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/program"
	"github.com/matzehuels/plansmith/pkg/core/sizing"
	"github.com/matzehuels/plansmith/pkg/core/walls"
	"github.com/matzehuels/plansmith/pkg/ids"
)

func placed(t plan.RoomType, x, y, w, d float64) plan.PlacedRoom {
	return plan.PlacedRoom{
		SizedRoom: plan.SizedRoom{Role: plan.Role{Type: t}, Width: w, Depth: d, Area: w * d},
		X:         x,
		Y:         y,
	}
}

func classify(rooms ...plan.PlacedRoom) []walls.Classification {
	return walls.Classify(walls.Synthesize(rooms, walls.Options{}, ids.NewSequential()), rooms)
}

func TestDoorPosition(t *testing.T) {
	tests := []struct {
		length float64
		pos    float64
		ok     bool
	}{
		{1.0, 0, false},
		{1.29, 0, false},
		{1.31, 0.205, true},
		{3.0, 1.05, true},
		{4.0, 1.55, true},
	}
	for _, tt := range tests {
		pos, ok := DoorPosition(tt.length, DoorWidth)
		assert.Equal(t, tt.ok, ok, "length=%v", tt.length)
		if ok {
			assert.InDelta(t, tt.pos, pos, 1e-9, "length=%v", tt.length)
			assert.GreaterOrEqual(t, pos, DoorEndMargin-1e-9)
			assert.LessOrEqual(t, pos+DoorWidth, tt.length-DoorEndMargin+1e-9)
		}
	}
}

func TestWindowPositions(t *testing.T) {
	assert.Nil(t, WindowPositions(1.4, StandardWindow, false))
	one := WindowPositions(3.0, StandardWindow, false)
	require.Len(t, one, 1)
	assert.InDelta(t, 0.9, one[0], 1e-9)

	two := WindowPositions(6.0, StandardWindow, false)
	require.Len(t, two, 2)
	assert.InDelta(t, 1.4, two[0], 1e-9)
	assert.InDelta(t, 3.4, two[1], 1e-9)

	bath := WindowPositions(6.0, BathroomWindow, true)
	require.Len(t, bath, 1)
	assert.InDelta(t, 2.7, bath[0], 1e-9)

	assert.Nil(t, WindowPositions(0.8, BathroomWindow, true))
}

func TestPlaceDoorsInteriorOnly(t *testing.T) {
	cs := classify(placed(plan.Bedroom, 0, 0, 4, 4), placed(plan.Bedroom, 4, 0, 3, 4))
	doors := PlaceDoors(cs, ids.NewSequential())
	require.Len(t, doors, 1)
	assert.Equal(t, "door_1", doors[0].ID)
	assert.InDelta(t, 1.55, doors[0].Position, 1e-9)

	for _, c := range cs {
		if c.Wall.ID == doors[0].WallID {
			assert.True(t, c.Interior())
		}
	}
}

func TestPlaceDoorsOncePerWall(t *testing.T) {
	cs := classify(placed(plan.Bedroom, 0, 0, 4, 4), placed(plan.Bedroom, 4, 0, 3, 4))
	doubled := append(append([]walls.Classification{}, cs...), cs...)
	assert.Len(t, PlaceDoors(doubled, ids.NewSequential()), 1)
}

func TestPlaceWindowsSingleRoom(t *testing.T) {
	cs := classify(placed(plan.Living, 0, 0, 6, 3))
	windows := PlaceWindows(cs, ids.NewSequential())
	// Two 6 m walls get two windows each, two 3 m walls get one each.
	assert.Len(t, windows, 6)
	for _, w := range windows {
		assert.Equal(t, StandardWindow.Width, w.Width)
	}
	assert.Empty(t, PlaceDoors(cs, ids.NewSequential()))
}

func TestPlaceWindowsBathroom(t *testing.T) {
	cs := classify(placed(plan.Bathroom, 0, 0, 2.5, 3))
	windows := PlaceWindows(cs, ids.NewSequential())
	require.Len(t, windows, 4)
	for _, w := range windows {
		assert.Equal(t, 0.6, w.Width)
		assert.Equal(t, 0.6, w.Height)
		assert.Equal(t, 1.5, w.SillHeight)
	}
}

func TestOpeningsFitTheirWalls(t *testing.T) {
	for _, bt := range plan.BuildingTypes {
		for n := 1; n <= 10; n++ {
			rooms := packing.Pack(sizing.Allocate(program.Resolve(bt, n), 140).Rooms)
			cs := walls.Classify(walls.Synthesize(rooms, walls.Options{}, ids.NewSequential()), rooms)
			length := make(map[string]float64)
			for _, c := range cs {
				length[c.Wall.ID] = c.Wall.Length()
			}
			for _, d := range PlaceDoors(cs, ids.NewSequential()) {
				assert.GreaterOrEqual(t, d.Position, DoorEndMargin-1e-9)
				assert.LessOrEqual(t, d.Position+d.Width, length[d.WallID]-DoorEndMargin+1e-9)
			}
			for _, w := range PlaceWindows(cs, ids.NewSequential()) {
				assert.GreaterOrEqual(t, w.Position, 0.0)
				assert.LessOrEqual(t, w.Position+w.Width, length[w.WallID]+1e-9)
			}
		}
	}
}
