package furniture

import (
	"fmt"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/sizing"
)

// Proportion thresholds.
const (
	MaxAspectRatio = 3.0
	MinSide        = 1.5
	MinAreaFactor  = 0.7
	MaxAreaFactor  = 1.5
)

// ValidateProportions returns advisory issues for a sized room. An empty
// result means the room looks reasonable for its type.
func ValidateProportions(room plan.SizedRoom) []string {
	var issues []string
	if room.Width <= 0 || room.Depth <= 0 {
		return append(issues, fmt.Sprintf("%s has a non-positive dimension (%.2f x %.2f m)", room.Name, room.Width, room.Depth))
	}

	ratio := room.Width / room.Depth
	if ratio > MaxAspectRatio || ratio < 1/MaxAspectRatio {
		issues = append(issues, fmt.Sprintf("%s aspect ratio %.2f is outside 1:3 to 3:1", room.Name, ratio))
	}
	if room.Width < MinSide {
		issues = append(issues, fmt.Sprintf("%s width %.2f m is below %.1f m", room.Name, room.Width, MinSide))
	}
	if room.Depth < MinSide {
		issues = append(issues, fmt.Sprintf("%s depth %.2f m is below %.1f m", room.Name, room.Depth, MinSide))
	}

	rng := sizing.RangeFor(room.Type)
	area := room.Width * room.Depth
	if lo := rng.MinArea() * MinAreaFactor; area < lo {
		issues = append(issues, fmt.Sprintf("%s area %.2f m² is below %.2f m² for a %s", room.Name, area, lo, room.Type))
	}
	if hi := rng.MaxArea() * MaxAreaFactor; area > hi {
		issues = append(issues, fmt.Sprintf("%s area %.2f m² is above %.2f m² for a %s", room.Name, area, hi, room.Type))
	}
	return issues
}
