// Package openings places doors on interior walls and windows on exterior
// walls.
//
// Openings are placement policy, not constraints: a wall too short for an
// opening is skipped without error. Every placed opening satisfies
// 0 <= Position and Position+Width <= wall length.
package openings

import (
	"github.com/matzehuels/plansmith/pkg/core/geom"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/walls"
	"github.com/matzehuels/plansmith/pkg/ids"
)

// Door sizing, in meters.
const (
	DoorWidth  = 0.9
	DoorHeight = 2.1

	// DoorClearance is the extra wall length a door needs beyond its width.
	DoorClearance = 0.4

	// DoorEndMargin is the minimum distance between a door and a wall end.
	DoorEndMargin = 0.2
)

// Window sizing, in meters.
const (
	// WindowClearance is the extra wall length a window needs beyond its width.
	WindowClearance = 0.3

	// DoubleWindowLength is the wall length above which two windows are placed.
	DoubleWindowLength = 4.0
)

// WindowSpec is the size of one window.
type WindowSpec struct {
	Width      float64
	Height     float64
	SillHeight float64
}

// Window specs.
var (
	StandardWindow = WindowSpec{Width: 1.2, Height: 1.0, SillHeight: 1.0}
	BathroomWindow = WindowSpec{Width: 0.6, Height: 0.6, SillHeight: 1.5}
)

// WindowFor returns the window spec for a wall whose only room has type t.
func WindowFor(t plan.RoomType) WindowSpec {
	if t == plan.Bathroom {
		return BathroomWindow
	}
	return StandardWindow
}

// =============================================================================
// Doors
// =============================================================================

// DoorPosition returns where a door of the given width sits on a wall of the
// given length, and false if the wall is too short.
func DoorPosition(length, width float64) (float64, bool) {
	if length < width+DoorClearance {
		return 0, false
	}
	pos := (length - width) / 2
	return geom.Clamp(pos, DoorEndMargin, length-width-DoorEndMargin), true
}

// PlaceDoors adds one centered door to every interior wall long enough to
// hold it. A wall receives at most one door.
func PlaceDoors(cs []walls.Classification, gen ids.Generator) []plan.Door {
	out := []plan.Door{}
	used := make(map[string]bool)
	for _, c := range cs {
		if !c.Interior() || used[c.Wall.ID] {
			continue
		}
		pos, ok := DoorPosition(c.Wall.Length(), DoorWidth)
		if !ok {
			continue
		}
		used[c.Wall.ID] = true
		out = append(out, plan.Door{
			ID:       gen.Next("door"),
			WallID:   c.Wall.ID,
			Position: pos,
			Width:    DoorWidth,
			Height:   DoorHeight,
		})
	}
	return out
}

// =============================================================================
// Windows
// =============================================================================

// WindowPositions returns the positions of the windows a wall of the given
// length receives. Bathrooms never get the double window.
func WindowPositions(length float64, spec WindowSpec, bathroom bool) []float64 {
	if length < spec.Width+WindowClearance {
		return nil
	}
	if length > DoubleWindowLength && !bathroom {
		return []float64{
			length/3 - spec.Width/2,
			2*length/3 - spec.Width/2,
		}
	}
	return []float64{(length - spec.Width) / 2}
}

// PlaceWindows adds windows to every exterior wall long enough to hold one.
// Walls bordering a bathroom get a single small, high window.
func PlaceWindows(cs []walls.Classification, gen ids.Generator) []plan.Window {
	out := []plan.Window{}
	for _, c := range cs {
		if !c.Exterior() {
			continue
		}
		var roomType plan.RoomType
		if r, ok := c.Sole(); ok {
			roomType = r.Type
		}
		spec := WindowFor(roomType)
		for _, pos := range WindowPositions(c.Wall.Length(), spec, roomType == plan.Bathroom) {
			out = append(out, plan.Window{
				ID:         gen.Next("window"),
				WallID:     c.Wall.ID,
				Position:   pos,
				Width:      spec.Width,
				Height:     spec.Height,
				SillHeight: spec.SillHeight,
			})
		}
	}
	return out
}
