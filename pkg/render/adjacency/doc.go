// Package adjacency renders a plan's room adjacency graph with Graphviz.
//
// # Overview
//
// Each room becomes a node and each interior wall an edge between the rooms
// it separates. Walls that carry a door are drawn solid, walls without one
// dashed, so unreachable rooms stand out at a glance. Exterior walls are
// not drawn.
//
// This is an inspection aid for generated layouts, not a floor plan
// drawing.
//
// # Usage
//
//	dot := adjacency.ToDOT(p, adjacency.Options{Detailed: true})
//	svg, err := adjacency.RenderSVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package adjacency
