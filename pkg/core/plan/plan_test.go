package plan

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/plansmith/pkg/core/geom"
)

func TestParseEnums(t *testing.T) {
	if _, err := ParseRoomType("kitchen"); err != nil {
		t.Errorf("ParseRoomType(kitchen): %v", err)
	}
	if _, err := ParseRoomType("garage"); err == nil {
		t.Error("ParseRoomType(garage) should fail")
	}
	if b, err := ParseBuildingType("singleRoom"); err != nil || b != SingleRoom {
		t.Errorf("ParseBuildingType(singleRoom) = %v, %v", b, err)
	}
	if _, err := ParseBuildingType("castle"); err == nil {
		t.Error("ParseBuildingType(castle) should fail")
	}
	if _, err := ParseBudgetTier("premium"); err != nil {
		t.Errorf("ParseBudgetTier(premium): %v", err)
	}
	if _, err := ParseBudgetTier(""); err == nil {
		t.Error("ParseBudgetTier(\"\") should fail")
	}
}

func TestBuildingTypeLabel(t *testing.T) {
	tests := []struct {
		b    BuildingType
		want string
	}{
		{House, "House"},
		{SingleRoom, "Single Room"},
		{BuildingType("castle"), "castle"},
	}
	for _, tt := range tests {
		if got := tt.b.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestNewInitializesCollections(t *testing.T) {
	p := New("plan_1", "Empty", 2.7)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"walls", "rooms", "doors", "windows", "furniture", "stairs", "columns", "dimensions", "annotations"} {
		if !strings.Contains(string(data), `"`+field+`":[]`) {
			t.Errorf("%s should encode as an empty array: %s", field, data)
		}
	}
	if p.Units != "m" || p.Scale != 50 {
		t.Errorf("units/scale = %s/%v", p.Units, p.Scale)
	}
}

func TestWallGeometry(t *testing.T) {
	w := Wall{Start: geom.Point{X: 6, Y: 4}, End: geom.Point{X: 0, Y: 4}}
	if w.Length() != 6 {
		t.Errorf("Length() = %v, want 6", w.Length())
	}
	if !w.Horizontal() {
		t.Error("wall should be horizontal")
	}
	if got := w.Midpoint(); got != (geom.Point{X: 3, Y: 4}) {
		t.Errorf("Midpoint() = %+v", got)
	}
	rev := Wall{Start: w.End, End: w.Start}
	if w.Key() != rev.Key() {
		t.Error("Key should not depend on direction")
	}
}

func TestPlanLookupsAndBounds(t *testing.T) {
	p := New("plan_1", "Two rooms", 2.7)
	p.Rooms = append(p.Rooms,
		Room{ID: "room_1", Name: "Living Room", Type: Living, X: 0, Y: 0, Width: 6, Depth: 6, Area: 36},
		Room{ID: "room_2", Name: "Kitchen", Type: Kitchen, X: 6, Y: 0, Width: 4, Depth: 4.5, Area: 18},
	)
	p.Walls = append(p.Walls, Wall{ID: "wall_1"})

	if _, ok := p.Room("room_2"); !ok {
		t.Error("room_2 should be found")
	}
	if _, ok := p.Room("room_3"); ok {
		t.Error("room_3 should not be found")
	}
	if _, ok := p.Wall("wall_1"); !ok {
		t.Error("wall_1 should be found")
	}
	if got := p.TotalArea(); got != 54 {
		t.Errorf("TotalArea() = %v, want 54", got)
	}
	if got := p.Bounds(); got != (geom.Rect{X: 0, Y: 0, W: 10, H: 6}) {
		t.Errorf("Bounds() = %+v", got)
	}
	if got := New("plan_2", "", 2.7).Bounds(); got != (geom.Rect{}) {
		t.Errorf("empty Bounds() = %+v", got)
	}

	placed := p.PlacedRooms()
	if len(placed) != 2 || placed[1].Name != "Kitchen" || placed[1].X != 6 || placed[1].Depth != 4.5 {
		t.Errorf("PlacedRooms() = %+v", placed)
	}
}
