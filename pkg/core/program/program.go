// Package program resolves a building type and requested room count into
// the ordered list of room roles a plan will contain.
//
// Resolution is a pure table lookup: identical inputs always yield the same
// roles in the same order.
package program

import (
	"fmt"
	"math"

	"github.com/matzehuels/plansmith/pkg/core/plan"
)

// seedRoomCount is the number of roles every house or apartment starts with.
const seedRoomCount = 3

// bedroomShare is the fraction of the remaining budget spent on bedrooms.
const bedroomShare = 0.6

// meetingRoomThreshold is the room count at which commercial programs gain
// a meeting room.
const meetingRoomThreshold = 5

// extras fill residential slots left after bedrooms, one of each, in order.
var extras = []plan.Role{
	{Type: plan.Dining, Name: "Dining Room"},
	{Type: plan.Office, Name: "Home Office"},
	{Type: plan.Laundry, Name: "Laundry"},
	{Type: plan.Bathroom, Name: "Bathroom 2"},
}

// Resolve returns the room roles for a building of type b with roomCount
// requested rooms. Unknown building types resolve to no roles.
//
// The number of roles does not always equal roomCount: residential programs
// always contain the living room, kitchen and bathroom, and commercial
// programs add fixed rooms around the offices.
func Resolve(b plan.BuildingType, roomCount int) []plan.Role {
	switch b {
	case plan.SingleRoom:
		return []plan.Role{{Type: plan.Living, Name: "Main Room"}}
	case plan.Commercial:
		return commercial(roomCount)
	case plan.House, plan.Apartment:
		return residential(roomCount)
	}
	return []plan.Role{}
}

func commercial(roomCount int) []plan.Role {
	roles := []plan.Role{{Type: plan.Living, Name: "Reception"}}
	offices := max(1, roomCount-2)
	for i := 1; i <= offices; i++ {
		roles = append(roles, plan.Role{Type: plan.Office, Name: fmt.Sprintf("Office %d", i)})
	}
	roles = append(roles, plan.Role{Type: plan.Bathroom, Name: "Restroom"})
	if roomCount >= meetingRoomThreshold {
		roles = append(roles, plan.Role{Type: plan.Dining, Name: "Meeting Room"})
	}
	return roles
}

func residential(roomCount int) []plan.Role {
	roles := []plan.Role{
		{Type: plan.Living, Name: "Living Room"},
		{Type: plan.Kitchen, Name: "Kitchen"},
		{Type: plan.Bathroom, Name: "Bathroom"},
	}

	remaining := max(0, roomCount-seedRoomCount)
	bedrooms := min(remaining, int(math.Ceil(float64(remaining)*bedroomShare)))
	for i := 1; i <= bedrooms; i++ {
		roles = append(roles, plan.Role{Type: plan.Bedroom, Name: bedroomName(i)})
	}
	remaining -= bedrooms

	for _, extra := range extras {
		if remaining == 0 {
			break
		}
		roles = append(roles, extra)
		remaining--
	}
	return roles
}

func bedroomName(i int) string {
	if i == 1 {
		return "Master Bedroom"
	}
	return fmt.Sprintf("Bedroom %d", i)
}

// Count returns how many roles [Resolve] produces without building them.
func Count(b plan.BuildingType, roomCount int) int {
	return len(Resolve(b, roomCount))
}
