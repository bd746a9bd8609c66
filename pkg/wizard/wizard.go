package wizard

import (
	"fmt"

	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/core/furniture"
	"github.com/matzehuels/plansmith/pkg/core/openings"
	"github.com/matzehuels/plansmith/pkg/core/packing"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/program"
	"github.com/matzehuels/plansmith/pkg/core/sizing"
	"github.com/matzehuels/plansmith/pkg/core/walls"
	"github.com/matzehuels/plansmith/pkg/ids"
	"github.com/matzehuels/plansmith/pkg/palette"
)

// DivergenceThreshold is the relative gap between requested and allocated
// area above which Generate adds a note.
const DivergenceThreshold = 0.25

// Deps are the collaborators a generation draws on. Nil fields use the
// built-in defaults: sequential ids, the default catalog and palettes.
type Deps struct {
	IDs     ids.Generator
	Catalog catalog.Lookup
	Palette palette.Resolver
}

func (d Deps) withDefaults() Deps {
	if d.IDs == nil {
		d.IDs = ids.NewSequential()
	}
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}
	if d.Palette == nil {
		d.Palette = palette.Default()
	}
	return d
}

// Advisory lists proportion issues found for one room.
type Advisory struct {
	RoomID   string   `json:"roomId"`
	RoomName string   `json:"roomName"`
	Issues   []string `json:"issues"`
}

// Result is a generated plan plus derived data that is not persisted.
type Result struct {
	Plan            *plan.Plan
	Strategy        packing.Strategy
	Classifications []walls.Classification
	Advisories      []Advisory
	RequestedArea   float64
	AllocatedArea   float64

	// Notes are non-fatal observations for the caller to log.
	Notes []string
}

// Divergence returns |allocated-requested| / requested.
func (r *Result) Divergence() float64 {
	return sizing.Allocation{Requested: r.RequestedArea, Allocated: r.AllocatedArea}.Deviation()
}

// Generate validates cfg and synthesizes a plan.
func Generate(cfg Config, deps Deps) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Normalize()

	roles := program.Resolve(cfg.ProjectType, cfg.RoomCount)
	alloc := sizing.Allocate(roles, cfg.TotalSize)
	placed := packing.Pack(alloc.Rooms)

	res := Layout(placed, cfg, deps)
	res.Strategy = packing.StrategyFor(len(placed))
	res.RequestedArea = alloc.Requested
	res.AllocatedArea = alloc.Allocated
	if d := alloc.Deviation(); d > DivergenceThreshold {
		res.Notes = append(res.Notes, fmt.Sprintf(
			"allocated area %.1f m² differs from requested %.1f m² by %.0f%%",
			alloc.Allocated, alloc.Requested, d*100))
	}
	return res, nil
}

// Layout builds walls, openings and furniture around already placed rooms.
// cfg supplies the name, style, budget and wall settings; it is normalized
// but not validated. An empty rooms slice yields an empty plan.
func Layout(rooms []plan.PlacedRoom, cfg Config, deps Deps) *Result {
	cfg = cfg.Normalize()
	deps = deps.withDefaults()
	gen := deps.IDs
	finish := deps.Palette.Resolve(cfg.Style)

	p := plan.New(gen.Next("plan"), cfg.Name, cfg.WallHeight)
	res := &Result{Plan: p, Advisories: []Advisory{}}

	for _, r := range rooms {
		rect := r.Rect()
		corners := rect.Corners()
		p.Rooms = append(p.Rooms, plan.Room{
			ID:            gen.Next("room"),
			Name:          r.Name,
			Type:          r.Type,
			X:             r.X,
			Y:             r.Y,
			Width:         r.Width,
			Depth:         r.Depth,
			Area:          r.Area,
			Points:        corners[:],
			FloorMaterial: finish.FloorMaterial,
			FloorColor:    finish.FloorColor,
		})
		res.AllocatedArea += r.Area
	}

	p.Walls = walls.Synthesize(rooms, walls.Options{
		Thickness: cfg.WallThickness,
		Height:    cfg.WallHeight,
		Color:     finish.WallColor,
	}, gen)
	res.Classifications = walls.Classify(p.Walls, rooms)

	p.Doors = openings.PlaceDoors(res.Classifications, gen)
	p.Windows = openings.PlaceWindows(res.Classifications, gen)

	for i, r := range rooms {
		roomID := p.Rooms[i].ID
		items := furnish(r, cfg.Budget, deps.Catalog, res)
		for _, pl := range furniture.Positions(r, items) {
			p.Furniture = append(p.Furniture, plan.Furniture{
				ID:        gen.Next("furniture"),
				CatalogID: pl.CatalogID,
				RoomID:    roomID,
				Position:  pl.Position,
				Rotation:  pl.Rotation,
				Scale:     1,
			})
		}
		if issues := furniture.ValidateProportions(r.SizedRoom); len(issues) > 0 {
			res.Advisories = append(res.Advisories, Advisory{RoomID: roomID, RoomName: r.Name, Issues: issues})
		}
	}
	return res
}

// furnish returns the suggested ids for r that the catalog knows, noting
// every miss on res.
func furnish(r plan.PlacedRoom, tier plan.BudgetTier, lookup catalog.Lookup, res *Result) []string {
	suggested := furniture.Suggest(r.Type, tier)
	out := suggested[:0]
	for _, id := range suggested {
		if _, ok := lookup.Item(id); !ok {
			res.Notes = append(res.Notes, fmt.Sprintf("%s: catalog has no item %q", r.Name, id))
			continue
		}
		out = append(out, id)
	}
	return out
}
