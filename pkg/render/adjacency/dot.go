package adjacency

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/walls"
)

// Options configures adjacency diagram rendering.
type Options struct {
	// Detailed adds dimensions and area to node labels.
	// When false, only the room name is shown.
	Detailed bool
}

var fills = map[plan.RoomType]string{
	plan.Living:   "#fff3e0",
	plan.Kitchen:  "#e8f5e9",
	plan.Bathroom: "#e3f2fd",
	plan.Bedroom:  "#f3e5f5",
	plan.Dining:   "#fffde7",
	plan.Office:   "#eceff1",
	plan.Laundry:  "#e0f7fa",
	plan.Hallway:  "#fafafa",
}

// Edge is one adjacency between two rooms.
type Edge struct {
	From, To string
	WallID   string
	Door     bool
}

// Edges derives the room adjacencies of p from its interior walls. Edges
// follow wall order.
func Edges(p *plan.Plan) []Edge {
	rooms := p.PlacedRooms()
	doors := make(map[string]bool, len(p.Doors))
	for _, d := range p.Doors {
		doors[d.WallID] = true
	}

	var out []Edge
	for _, c := range walls.Classify(p.Walls, rooms) {
		if !c.Interior() {
			continue
		}
		for i := 0; i < len(c.Indices); i++ {
			for j := i + 1; j < len(c.Indices); j++ {
				out = append(out, Edge{
					From:   p.Rooms[c.Indices[i]].ID,
					To:     p.Rooms[c.Indices[j]].ID,
					WallID: c.Wall.ID,
					Door:   doors[c.Wall.ID],
				})
			}
		}
	}
	return out
}

// ToDOT converts a plan's adjacency graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(p *plan.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, r := range p.Rooms {
		fill, ok := fills[r.Type]
		if !ok {
			fill = "white"
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", r.ID, fmtLabel(r, opts.Detailed), fill)
	}

	buf.WriteString("\n")
	for _, e := range Edges(p) {
		if e.Door {
			fmt.Fprintf(&buf, "  %q -- %q [label=\"door\"];\n", e.From, e.To)
		} else {
			fmt.Fprintf(&buf, "  %q -- %q [style=dashed];\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(r plan.Room, detailed bool) string {
	if !detailed {
		return r.Name
	}
	parts := []string{
		r.Name,
		fmt.Sprintf("%.1f x %.1f m", r.Width, r.Depth),
		fmt.Sprintf("%.1f m²", r.Area),
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
