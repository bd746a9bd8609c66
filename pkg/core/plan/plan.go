package plan

import (
	"encoding/json"

	"github.com/matzehuels/plansmith/pkg/core/geom"
)

// Plan-wide constants.
const (
	// Units is the length unit of every coordinate in a plan.
	Units = "m"

	// Scale is the editor's canvas resolution in pixels per meter.
	Scale = 50.0
)

// =============================================================================
// Pipeline Types
// =============================================================================

// Role is a room purpose before it has a size or position.
type Role struct {
	Type RoomType `json:"type"`
	Name string   `json:"name"`
}

// SizedRoom is a role with dimensions in meters. Area is Width*Depth.
type SizedRoom struct {
	Role
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
	Area  float64 `json:"area"`
}

// PlacedRoom is a sized room positioned by its top-left corner.
type PlacedRoom struct {
	SizedRoom
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect returns the room's footprint.
func (r PlacedRoom) Rect() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Depth}
}

// =============================================================================
// Entities
// =============================================================================

// Wall is a straight, axis-aligned wall segment.
type Wall struct {
	ID        string     `json:"id" bson:"id"`
	Start     geom.Point `json:"start" bson:"start"`
	End       geom.Point `json:"end" bson:"end"`
	Thickness float64    `json:"thickness" bson:"thickness"`
	Height    float64    `json:"height" bson:"height"`
	Color     string     `json:"color" bson:"color"`
}

// Length returns the wall's length in meters.
func (w Wall) Length() float64 { return geom.Distance(w.Start, w.End) }

// Midpoint returns the point halfway along the wall.
func (w Wall) Midpoint() geom.Point { return geom.Midpoint(w.Start, w.End) }

// Horizontal reports whether the wall runs along the X axis.
func (w Wall) Horizontal() bool { return w.Start.Y == w.End.Y }

// Key returns the wall's canonical segment key.
func (w Wall) Key() geom.SegmentKey { return geom.KeyOf(w.Start, w.End) }

// Room is a placed, styled room as stored in a plan.
type Room struct {
	ID            string       `json:"id" bson:"id"`
	Name          string       `json:"name" bson:"name"`
	Type          RoomType     `json:"type" bson:"type"`
	X             float64      `json:"x" bson:"x"`
	Y             float64      `json:"y" bson:"y"`
	Width         float64      `json:"width" bson:"width"`
	Depth         float64      `json:"depth" bson:"depth"`
	Area          float64      `json:"area" bson:"area"`
	Points        []geom.Point `json:"points" bson:"points"`
	FloorMaterial string       `json:"floorMaterial" bson:"floorMaterial"`
	FloorColor    string       `json:"floorColor" bson:"floorColor"`
}

// Rect returns the room's footprint.
func (r Room) Rect() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Depth}
}

// Placed converts r back into the synthesizer's placed-room form.
func (r Room) Placed() PlacedRoom {
	return PlacedRoom{
		SizedRoom: SizedRoom{
			Role:  Role{Type: r.Type, Name: r.Name},
			Width: r.Width,
			Depth: r.Depth,
			Area:  r.Area,
		},
		X: r.X,
		Y: r.Y,
	}
}

// Door is an opening in a wall. Position is the distance from the wall's
// start to the near edge of the door.
type Door struct {
	ID       string  `json:"id" bson:"id"`
	WallID   string  `json:"wallId" bson:"wallId"`
	Position float64 `json:"position" bson:"position"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
}

// Window is a glazed opening in a wall, raised by SillHeight.
type Window struct {
	ID         string  `json:"id" bson:"id"`
	WallID     string  `json:"wallId" bson:"wallId"`
	Position   float64 `json:"position" bson:"position"`
	Width      float64 `json:"width" bson:"width"`
	Height     float64 `json:"height" bson:"height"`
	SillHeight float64 `json:"sillHeight" bson:"sillHeight"`
}

// Furniture places one catalog item inside a room. Rotation is in degrees.
type Furniture struct {
	ID        string     `json:"id" bson:"id"`
	CatalogID string     `json:"catalogId" bson:"catalogId"`
	RoomID    string     `json:"roomId" bson:"roomId"`
	Position  geom.Point `json:"position" bson:"position"`
	Rotation  float64    `json:"rotation" bson:"rotation"`
	Scale     float64    `json:"scale" bson:"scale"`
}

// =============================================================================
// Plan
// =============================================================================

// Plan is a complete floor plan.
type Plan struct {
	ID         string      `json:"id" bson:"_id"`
	Name       string      `json:"name" bson:"name"`
	Units      string      `json:"units" bson:"units"`
	Scale      float64     `json:"scale" bson:"scale"`
	WallHeight float64     `json:"wallHeight" bson:"wallHeight"`
	Walls      []Wall      `json:"walls" bson:"walls"`
	Rooms      []Room      `json:"rooms" bson:"rooms"`
	Doors      []Door      `json:"doors" bson:"doors"`
	Windows    []Window    `json:"windows" bson:"windows"`
	Furniture  []Furniture `json:"furniture" bson:"furniture"`

	// Editor-owned collections, always empty when generated.
	Stairs      []json.RawMessage `json:"stairs" bson:"stairs"`
	Columns     []json.RawMessage `json:"columns" bson:"columns"`
	Dimensions  []json.RawMessage `json:"dimensions" bson:"dimensions"`
	Annotations []json.RawMessage `json:"annotations" bson:"annotations"`
}

// New returns an empty plan with every collection initialized.
func New(id, name string, wallHeight float64) *Plan {
	return &Plan{
		ID:          id,
		Name:        name,
		Units:       Units,
		Scale:       Scale,
		WallHeight:  wallHeight,
		Walls:       []Wall{},
		Rooms:       []Room{},
		Doors:       []Door{},
		Windows:     []Window{},
		Furniture:   []Furniture{},
		Stairs:      []json.RawMessage{},
		Columns:     []json.RawMessage{},
		Dimensions:  []json.RawMessage{},
		Annotations: []json.RawMessage{},
	}
}

// Wall returns the wall with the given id.
func (p *Plan) Wall(id string) (Wall, bool) {
	for _, w := range p.Walls {
		if w.ID == id {
			return w, true
		}
	}
	return Wall{}, false
}

// Room returns the room with the given id.
func (p *Plan) Room(id string) (Room, bool) {
	for _, r := range p.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// PlacedRooms returns every room in placed-room form, in plan order.
func (p *Plan) PlacedRooms() []PlacedRoom {
	out := make([]PlacedRoom, len(p.Rooms))
	for i, r := range p.Rooms {
		out[i] = r.Placed()
	}
	return out
}

// TotalArea sums the area of every room.
func (p *Plan) TotalArea() float64 {
	var sum float64
	for _, r := range p.Rooms {
		sum += r.Area
	}
	return sum
}

// Bounds returns the smallest rectangle containing every room.
func (p *Plan) Bounds() geom.Rect {
	if len(p.Rooms) == 0 {
		return geom.Rect{}
	}
	b := p.Rooms[0].Rect()
	minX, minY, maxX, maxY := b.X, b.Y, b.MaxX(), b.MaxY()
	for _, r := range p.Rooms[1:] {
		rr := r.Rect()
		minX = min(minX, rr.X)
		minY = min(minY, rr.Y)
		maxX = max(maxX, rr.MaxX())
		maxY = max(maxY, rr.MaxY())
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
