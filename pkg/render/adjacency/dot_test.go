package adjacency

import (
	"strings"
	"testing"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/ids"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

func threeRoomHouse(t *testing.T) *plan.Plan {
	t.Helper()
	res, err := wizard.Generate(wizard.Config{
		ProjectType: plan.House,
		RoomCount:   3,
		TotalSize:   70,
		Budget:      plan.Medium,
	}, wizard.Deps{IDs: ids.NewSequential()})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res.Plan
}

func TestEdges(t *testing.T) {
	p := threeRoomHouse(t)
	edges := Edges(p)

	// Living/kitchen share two overlapping wall segments; living/bath one.
	if len(edges) != 3 {
		t.Fatalf("len(Edges) = %d, want 3: %+v", len(edges), edges)
	}
	pairs := make(map[string]int)
	for _, e := range edges {
		if !e.Door {
			t.Errorf("edge on %s should carry a door", e.WallID)
		}
		pairs[e.From+"-"+e.To]++
	}
	if pairs["room_1-room_2"] != 2 {
		t.Errorf("living-kitchen edges = %d, want 2 (%v)", pairs["room_1-room_2"], pairs)
	}
	if pairs["room_1-room_3"] != 1 {
		t.Errorf("living-bath edges = %d, want 1 (%v)", pairs["room_1-room_3"], pairs)
	}
}

func TestEdgesSingleRoom(t *testing.T) {
	res, err := wizard.Generate(wizard.Config{ProjectType: plan.SingleRoom, RoomCount: 1, TotalSize: 30, Budget: plan.Economical},
		wizard.Deps{IDs: ids.NewSequential()})
	if err != nil {
		t.Fatal(err)
	}
	if got := Edges(res.Plan); len(got) != 0 {
		t.Errorf("single room should have no edges, got %+v", got)
	}
}

func TestToDOT(t *testing.T) {
	p := threeRoomHouse(t)

	dot := ToDOT(p, Options{})
	for _, want := range []string{
		"graph G {",
		`"room_1" [label="Living Room"`,
		`"room_3" [label="Bathroom"`,
		`"room_1" -- "room_3" [label="door"]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("adjacency graph should be undirected")
	}

	detailed := ToDOT(p, Options{Detailed: true})
	if !strings.Contains(detailed, `6.0 x 6.0 m`) {
		t.Errorf("detailed label missing dimensions:\n%s", detailed)
	}
}

func TestToDOTWithoutDoor(t *testing.T) {
	p := threeRoomHouse(t)
	p.Doors = p.Doors[:0]
	if !strings.Contains(ToDOT(p, Options{}), "style=dashed") {
		t.Error("walls without doors should be dashed")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(threeRoomHouse(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "Living Room") {
		t.Errorf("unexpected SVG output: %.200s", s)
	}
	if !strings.Contains(s, `viewBox="0 0 `) {
		t.Error("viewBox should be normalized to start at the origin")
	}
}

func TestRenderSVGInvalid(t *testing.T) {
	if _, err := RenderSVG("graph {"); err == nil {
		t.Error("malformed DOT should fail")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox =\n%s\nwant\n%s", got, want)
	}
	if string(normalizeViewBox([]byte("<svg>"))) != "<svg>" {
		t.Error("SVG without viewBox should be unchanged")
	}
}
