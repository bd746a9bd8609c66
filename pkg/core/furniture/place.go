package furniture

import (
	"github.com/matzehuels/plansmith/pkg/core/geom"
	"github.com/matzehuels/plansmith/pkg/core/plan"
)

const (
	// Margin is the clearance between furniture anchors and the walls.
	Margin = 0.3

	// Jitter is the offset added on both axes per completed strategy pass.
	Jitter = 0.4
)

// Zone is a named anchor inside a room.
type Zone string

const (
	TopLeft      Zone = "topLeft"
	TopCenter    Zone = "topCenter"
	TopRight     Zone = "topRight"
	LeftCenter   Zone = "leftCenter"
	Center       Zone = "center"
	RightCenter  Zone = "rightCenter"
	BottomLeft   Zone = "bottomLeft"
	BottomCenter Zone = "bottomCenter"
	BottomRight  Zone = "bottomRight"
)

// Zones lists every zone in reading order.
var Zones = []Zone{TopLeft, TopCenter, TopRight, LeftCenter, Center, RightCenter, BottomLeft, BottomCenter, BottomRight}

// Rotation returns the default facing of items placed in z, in degrees.
// Items along the top face down into the room, items along the bottom face
// up, side items face the opposite wall.
func (z Zone) Rotation() float64 {
	switch z {
	case BottomLeft, BottomCenter, BottomRight:
		return 180
	case LeftCenter:
		return 90
	case RightCenter:
		return 270
	default:
		return 0
	}
}

// Anchor returns z's position inside r, inset by Margin.
func (z Zone) Anchor(r geom.Rect) geom.Point {
	in := r.Shrink(Margin)
	c := in.Center()
	switch z {
	case TopLeft:
		return geom.Point{X: in.X, Y: in.Y}
	case TopCenter:
		return geom.Point{X: c.X, Y: in.Y}
	case TopRight:
		return geom.Point{X: in.MaxX(), Y: in.Y}
	case LeftCenter:
		return geom.Point{X: in.X, Y: c.Y}
	case RightCenter:
		return geom.Point{X: in.MaxX(), Y: c.Y}
	case BottomLeft:
		return geom.Point{X: in.X, Y: in.MaxY()}
	case BottomCenter:
		return geom.Point{X: c.X, Y: in.MaxY()}
	case BottomRight:
		return geom.Point{X: in.MaxX(), Y: in.MaxY()}
	default:
		return c
	}
}

// strategies hold the zone order per room type. Repeats mirror how many of
// a piece a room usually carries (dining chairs, nightstands).
var strategies = map[plan.RoomType][]Zone{
	plan.Bedroom:  {TopCenter, TopLeft, TopRight, RightCenter, BottomRight, LeftCenter, BottomCenter},
	plan.Living:   {LeftCenter, Center, RightCenter, BottomLeft, TopRight, TopLeft, BottomRight, BottomCenter, Center},
	plan.Kitchen:  {TopLeft, TopCenter, TopRight, RightCenter, LeftCenter, Center, BottomCenter, BottomCenter},
	plan.Dining:   {Center, TopCenter, BottomCenter, LeftCenter, RightCenter, TopCenter, BottomCenter, TopRight, BottomLeft, TopLeft, BottomRight},
	plan.Bathroom: {TopLeft, TopRight, BottomLeft, BottomRight, RightCenter},
	plan.Office:   {TopCenter, Center, RightCenter, TopLeft, LeftCenter, BottomRight},
	plan.Laundry:  {TopLeft, TopRight, LeftCenter, RightCenter, BottomLeft},
	plan.Hallway:  {LeftCenter, RightCenter, Center, BottomCenter},
}

// Strategy returns the zone order for t. Unknown types use [Center] only.
func Strategy(t plan.RoomType) []Zone {
	if s, ok := strategies[t]; ok {
		return s
	}
	return []Zone{Center}
}

// Placement is one positioned catalog item.
type Placement struct {
	CatalogID string
	Zone      Zone
	Position  geom.Point
	Rotation  float64
}

// Positions assigns every item a zone, position, and rotation inside room.
// The result has one entry per item, in order.
func Positions(room plan.PlacedRoom, itemIDs []string) []Placement {
	rect := room.Rect()
	bounds := rect.Shrink(Margin)
	strategy := Strategy(room.Type)

	out := make([]Placement, 0, len(itemIDs))
	for i, id := range itemIDs {
		zone := strategy[i%len(strategy)]
		cycle := float64(i / len(strategy))
		p := zone.Anchor(rect).Add(Jitter*cycle, Jitter*cycle)
		out = append(out, Placement{
			CatalogID: id,
			Zone:      zone,
			Position:  bounds.ClampPoint(p),
			Rotation:  zone.Rotation(),
		})
	}
	return out
}
