package walls

import (
	"github.com/matzehuels/plansmith/pkg/core/geom"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/ids"
)

// Wall defaults, in meters.
const (
	DefaultThickness = 0.15
	DefaultHeight    = 2.7
	DefaultColor     = "#f5f5f5"
)

// Options configures the walls produced by [Synthesize].
type Options struct {
	Thickness float64
	Height    float64
	Color     string
}

func (o Options) withDefaults() Options {
	if o.Thickness <= 0 {
		o.Thickness = DefaultThickness
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	return o
}

// Segments returns the four boundary segments of r in the order top, right,
// bottom, left.
func Segments(r geom.Rect) [4][2]geom.Point {
	c := r.Corners()
	tl, tr, br, bl := c[0], c[1], c[2], c[3]
	return [4][2]geom.Point{
		{tl, tr},
		{tr, br},
		{bl, br},
		{tl, bl},
	}
}

// Synthesize builds the deduplicated wall list for rooms. Walls appear in
// room order, and within a room in [Segments] order.
func Synthesize(rooms []plan.PlacedRoom, opts Options, gen ids.Generator) []plan.Wall {
	opts = opts.withDefaults()
	seen := make(map[geom.SegmentKey]struct{}, len(rooms)*4)
	out := make([]plan.Wall, 0, len(rooms)*4)

	for _, r := range rooms {
		for _, seg := range Segments(r.Rect()) {
			key := geom.KeyOf(seg[0], seg[1])
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, plan.Wall{
				ID:        gen.Next("wall"),
				Start:     seg[0],
				End:       seg[1],
				Thickness: opts.Thickness,
				Height:    opts.Height,
				Color:     opts.Color,
			})
		}
	}
	return out
}

// =============================================================================
// Classification
// =============================================================================

// Classification describes which rooms a wall borders. It is derived on
// demand and never stored in a plan.
type Classification struct {
	Wall plan.Wall

	// Rooms are the rooms whose edges the wall's midpoint lies on.
	Rooms []plan.PlacedRoom

	// Indices are the positions of Rooms in the slice passed to Classify.
	Indices []int
}

// Interior reports whether two or more rooms border the wall.
func (c Classification) Interior() bool { return len(c.Rooms) >= 2 }

// Exterior reports whether at most one room borders the wall.
func (c Classification) Exterior() bool { return len(c.Rooms) <= 1 }

// Sole returns the only adjacent room of an exterior wall.
func (c Classification) Sole() (plan.PlacedRoom, bool) {
	if len(c.Rooms) != 1 {
		return plan.PlacedRoom{}, false
	}
	return c.Rooms[0], true
}

// Adjacent returns the rooms whose edges pass through p.
func Adjacent(p geom.Point, rooms []plan.PlacedRoom) ([]plan.PlacedRoom, []int) {
	var out []plan.PlacedRoom
	var idx []int
	for i, r := range rooms {
		if r.Rect().OnEdge(p, geom.Tolerance) {
			out = append(out, r)
			idx = append(idx, i)
		}
	}
	return out, idx
}

// Classify classifies every wall against rooms. Output order follows walls.
func Classify(walls []plan.Wall, rooms []plan.PlacedRoom) []Classification {
	out := make([]Classification, len(walls))
	for i, w := range walls {
		adj, idx := Adjacent(w.Midpoint(), rooms)
		out[i] = Classification{Wall: w, Rooms: adj, Indices: idx}
	}
	return out
}

// Counts returns how many classifications are interior and exterior.
func Counts(cs []Classification) (interior, exterior int) {
	for _, c := range cs {
		if c.Interior() {
			interior++
		} else {
			exterior++
		}
	}
	return interior, exterior
}
