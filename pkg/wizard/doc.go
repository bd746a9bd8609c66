// Package wizard turns a handful of high-level parameters into a complete
// floor plan.
//
// # Stages
//
// [Generate] runs the synthesizer stages in order:
//
//  1. Resolve the room program for the building type (pkg/core/program)
//  2. Size every room against the requested area (pkg/core/sizing)
//  3. Pack the rooms onto the plane (pkg/core/packing)
//  4. Synthesize and deduplicate walls, then classify them (pkg/core/walls)
//  5. Place doors and windows (pkg/core/openings)
//  6. Furnish each room (pkg/core/furniture)
//
// Steps 4 to 6 are exposed separately as [Layout] for callers that bring
// their own placed rooms.
//
// # Determinism
//
// Generation is pure and synchronous. With a deterministic [ids.Generator]
// the same Config always yields a byte-identical plan.
//
// # Failure
//
// Only [Config.Validate] fails. Every later stage degrades instead: walls
// too short for an opening are skipped, unknown catalog ids are dropped
// and reported in [Result.Notes].
package wizard
