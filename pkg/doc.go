// Package pkg provides the core libraries for Plansmith floor-plan synthesis.
//
// # Overview
//
// Plansmith turns a handful of parameters (project type, room count, total
// area, style and budget) into a complete floor plan: rooms, walls, doors,
// windows and furniture, in the JSON shape a floor-plan editor loads. The
// pkg directory is organized into four main areas:
//
//  1. [core] - Domain logic (room programs, sizing, packing, walls, openings, furniture)
//  2. [wizard] - The synthesizer that chains the core stages into a plan
//  3. [pipeline] - Orchestration with caching (generate → render)
//  4. Outputs and infrastructure: [planio], [render/adjacency],
//     [export/schedule], [cache], [store], [api]
//
// # Architecture
//
// The data flow of one generation:
//
//	wizard.Config
//	     ↓
//	[core/program] (room roles for the building type)
//	     ↓
//	[core/sizing] (target areas and dimensions)
//	     ↓
//	[core/packing] (room positions)
//	     ↓
//	[core/walls] → [core/openings] → [core/furniture]
//	     ↓
//	plan.Plan → JSON / DOT / SVG / XLSX
//
// # Quick Start
//
//	import "github.com/matzehuels/plansmith/pkg/wizard"
//
//	cfg := wizard.DefaultConfig()
//	cfg.RoomCount = 3
//	res, err := wizard.Generate(cfg, wizard.Deps{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(res.Plan.Walls), "walls")
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/plan] - The plan document and its enums. [core/geom] holds points,
// rectangles and segment keys shared by every stage.
//
// [core/program], [core/sizing], [core/packing] - Which rooms a building
// gets, how large they are and where they go.
//
// [core/walls], [core/openings], [core/furniture] - Wall synthesis and
// classification, door and window placement, furniture suggestion and
// placement plus proportion advisories.
//
// ## Infrastructure
//
// [cache] - File, Redis and null caches for generated plans and rendered
// artifacts. [store] - Saved plans in memory, SQLite or MongoDB.
//
// [api] - The HTTP API served by `plansmith serve`.
//
// [catalog], [palette] - Furniture items and style finishes, both
// overridable from TOML.
//
// ## Observability
//
// [observability] - Hooks for pipeline, cache, store and HTTP events.
//
// [core]: github.com/matzehuels/plansmith/pkg/core
// [core/plan]: github.com/matzehuels/plansmith/pkg/core/plan
// [core/geom]: github.com/matzehuels/plansmith/pkg/core/geom
// [core/program]: github.com/matzehuels/plansmith/pkg/core/program
// [core/sizing]: github.com/matzehuels/plansmith/pkg/core/sizing
// [core/packing]: github.com/matzehuels/plansmith/pkg/core/packing
// [core/walls]: github.com/matzehuels/plansmith/pkg/core/walls
// [core/openings]: github.com/matzehuels/plansmith/pkg/core/openings
// [core/furniture]: github.com/matzehuels/plansmith/pkg/core/furniture
// [wizard]: github.com/matzehuels/plansmith/pkg/wizard
// [pipeline]: github.com/matzehuels/plansmith/pkg/pipeline
// [planio]: github.com/matzehuels/plansmith/pkg/planio
// [render/adjacency]: github.com/matzehuels/plansmith/pkg/render/adjacency
// [export/schedule]: github.com/matzehuels/plansmith/pkg/export/schedule
// [cache]: github.com/matzehuels/plansmith/pkg/cache
// [store]: github.com/matzehuels/plansmith/pkg/store
// [api]: github.com/matzehuels/plansmith/pkg/api
// [catalog]: github.com/matzehuels/plansmith/pkg/catalog
// [palette]: github.com/matzehuels/plansmith/pkg/palette
// [observability]: github.com/matzehuels/plansmith/pkg/observability
package pkg
