package planio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/plansmith/pkg/core/plan"
)

// ReadPlan decodes a JSON plan from r and validates its references.
//
// ReadPlan returns an error if:
//   - The JSON is malformed
//   - Two entities share an id
//   - A door or window references an unknown wall
//   - A furniture item references an unknown room
//
// ReadPlan does not close r.
func ReadPlan(r io.Reader) (*plan.Plan, error) {
	var p plan.Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	fillEmpty(&p)
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReadPlanFile reads the JSON plan at path.
func ReadPlanFile(path string) (*plan.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ReadPlan(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// UnmarshalPlan decodes a plan from data.
func UnmarshalPlan(data []byte) (*plan.Plan, error) {
	return ReadPlan(bytes.NewReader(data))
}

// Validate checks id uniqueness and cross references.
func Validate(p *plan.Plan) error {
	seen := make(map[string]string)
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s with empty id", kind)
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("%s %s: id already used by a %s", kind, id, prev)
		}
		seen[id] = kind
		return nil
	}

	walls := make(map[string]bool, len(p.Walls))
	for _, w := range p.Walls {
		if err := claim("wall", w.ID); err != nil {
			return err
		}
		walls[w.ID] = true
	}
	rooms := make(map[string]bool, len(p.Rooms))
	for _, r := range p.Rooms {
		if err := claim("room", r.ID); err != nil {
			return err
		}
		rooms[r.ID] = true
	}
	for _, d := range p.Doors {
		if err := claim("door", d.ID); err != nil {
			return err
		}
		if !walls[d.WallID] {
			return fmt.Errorf("door %s: unknown wall %q", d.ID, d.WallID)
		}
	}
	for _, w := range p.Windows {
		if err := claim("window", w.ID); err != nil {
			return err
		}
		if !walls[w.WallID] {
			return fmt.Errorf("window %s: unknown wall %q", w.ID, w.WallID)
		}
	}
	for _, f := range p.Furniture {
		if err := claim("furniture", f.ID); err != nil {
			return err
		}
		if f.RoomID != "" && !rooms[f.RoomID] {
			return fmt.Errorf("furniture %s: unknown room %q", f.ID, f.RoomID)
		}
	}
	return nil
}

func fillEmpty(p *plan.Plan) {
	if p.Walls == nil {
		p.Walls = []plan.Wall{}
	}
	if p.Rooms == nil {
		p.Rooms = []plan.Room{}
	}
	if p.Doors == nil {
		p.Doors = []plan.Door{}
	}
	if p.Windows == nil {
		p.Windows = []plan.Window{}
	}
	if p.Furniture == nil {
		p.Furniture = []plan.Furniture{}
	}
	if p.Stairs == nil {
		p.Stairs = []json.RawMessage{}
	}
	if p.Columns == nil {
		p.Columns = []json.RawMessage{}
	}
	if p.Dimensions == nil {
		p.Dimensions = []json.RawMessage{}
	}
	if p.Annotations == nil {
		p.Annotations = []json.RawMessage{}
	}
}
