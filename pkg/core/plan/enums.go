package plan

import "fmt"

// =============================================================================
// RoomType
// =============================================================================

// RoomType is the purpose of a room.
type RoomType string

// Room types.
const (
	Bedroom  RoomType = "bedroom"
	Kitchen  RoomType = "kitchen"
	Bathroom RoomType = "bathroom"
	Living   RoomType = "living"
	Office   RoomType = "office"
	Dining   RoomType = "dining"
	Laundry  RoomType = "laundry"
	Hallway  RoomType = "hallway"
)

// RoomTypes lists every room type in a stable order.
var RoomTypes = []RoomType{Bedroom, Kitchen, Bathroom, Living, Office, Dining, Laundry, Hallway}

// Valid reports whether t is a known room type.
func (t RoomType) Valid() bool {
	for _, k := range RoomTypes {
		if t == k {
			return true
		}
	}
	return false
}

func (t RoomType) String() string { return string(t) }

// ParseRoomType converts s into a RoomType.
func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown room type: %q", s)
	}
	return t, nil
}

// =============================================================================
// BuildingType
// =============================================================================

// BuildingType selects the room program.
type BuildingType string

// Building types.
const (
	House      BuildingType = "house"
	Apartment  BuildingType = "apartment"
	Commercial BuildingType = "commercial"
	SingleRoom BuildingType = "singleRoom"
)

// BuildingTypes lists every building type.
var BuildingTypes = []BuildingType{House, Apartment, Commercial, SingleRoom}

// Valid reports whether b is a known building type.
func (b BuildingType) Valid() bool {
	for _, k := range BuildingTypes {
		if b == k {
			return true
		}
	}
	return false
}

func (b BuildingType) String() string { return string(b) }

// Label returns a human-readable name.
func (b BuildingType) Label() string {
	switch b {
	case House:
		return "House"
	case Apartment:
		return "Apartment"
	case Commercial:
		return "Commercial"
	case SingleRoom:
		return "Single Room"
	}
	return string(b)
}

// ParseBuildingType converts s into a BuildingType.
func ParseBuildingType(s string) (BuildingType, error) {
	b := BuildingType(s)
	if !b.Valid() {
		return "", fmt.Errorf("unknown building type: %q", s)
	}
	return b, nil
}

// =============================================================================
// BudgetTier
// =============================================================================

// BudgetTier controls how richly rooms are furnished.
type BudgetTier string

// Budget tiers, cheapest first.
const (
	Economical BudgetTier = "economical"
	Medium     BudgetTier = "medium"
	Premium    BudgetTier = "premium"
)

// BudgetTiers lists every budget tier.
var BudgetTiers = []BudgetTier{Economical, Medium, Premium}

// Valid reports whether t is a known budget tier.
func (t BudgetTier) Valid() bool {
	return t == Economical || t == Medium || t == Premium
}

func (t BudgetTier) String() string { return string(t) }

// ParseBudgetTier converts s into a BudgetTier.
func ParseBudgetTier(s string) (BudgetTier, error) {
	t := BudgetTier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown budget tier: %q", s)
	}
	return t, nil
}
