// Package furniture chooses and positions furniture inside a placed room.
//
// # Curation
//
// [Suggest] maps a room type and budget tier to an ordered list of catalog
// ids. Higher tiers refine lower ones: more pieces, larger pieces. Unknown
// room types get an empty list.
//
// # Placement
//
// Each room exposes nine named [Zone] anchors inset by [Margin] from its
// walls. Every room type has a zone-order strategy; item i goes to
// strategy[i % len(strategy)]. Items in a second or later pass over the
// strategy are nudged by [Jitter] per pass so repeats do not stack, and
// every result is clamped back into the inset rectangle.
//
// # Proportions
//
// [ValidateProportions] is advisory. It returns human-readable issues and
// never fails.
package furniture
