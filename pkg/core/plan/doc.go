// Package plan defines the floor plan data model produced by the layout
// synthesizer and consumed by editors, renderers and stores.
//
// # Pipeline types
//
// The synthesizer refines rooms in three steps, each a superset of the
// previous one:
//
//   - [Role]: what a room is for (type and display name)
//   - [SizedRoom]: a role with width, depth and area in meters
//   - [PlacedRoom]: a sized room with its top-left corner on the plane
//
// # Plan
//
// [Plan] is the aggregate handed to the outside world. Walls, rooms, doors,
// windows and furniture are filled by the synthesizer; stairs, columns,
// dimensions and annotations are empty placeholders that belong to the
// manual editor and are carried through untouched.
//
// All enums marshal as their string names.
package plan
