// Package planio provides JSON import and export for floor plans.
//
// # Overview
//
// The JSON format is the one editors consume: camelCase fields, meters as
// units, and every collection present even when empty.
//
//	{
//	  "id": "plan_1",
//	  "name": "Smart House Layout",
//	  "units": "m",
//	  "scale": 50,
//	  "wallHeight": 2.7,
//	  "walls": [{"id": "wall_1", "start": {"x": 0, "y": 0}, "end": {"x": 6, "y": 0}, ...}],
//	  "rooms": [...],
//	  "doors": [...],
//	  "windows": [...],
//	  "furniture": [...],
//	  "stairs": [], "columns": [], "dimensions": [], "annotations": []
//	}
//
// Editor-owned collections (stairs, columns, dimensions, annotations) are
// carried through as raw JSON and never interpreted.
//
// # Import
//
// [ReadPlan] and [ReadPlanFile] decode a plan and check its references:
// entity ids are unique, doors and windows sit on known walls, furniture
// belongs to known rooms. Missing collections are replaced by empty ones.
//
// # Export
//
// [WritePlan] and [WritePlanFile] encode with two-space indentation. A plan
// exported and re-imported compares equal to the original.
package planio
