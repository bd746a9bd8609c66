package furniture

import "github.com/matzehuels/plansmith/pkg/core/plan"

type tierSet struct {
	economical, medium, premium []string
}

func (s tierSet) pick(t plan.BudgetTier) []string {
	switch t {
	case plan.Economical:
		return s.economical
	case plan.Premium:
		return s.premium
	default:
		return s.medium
	}
}

var suggestions = map[plan.RoomType]tierSet{
	plan.Bedroom: {
		economical: []string{"bed-double", "nightstand", "wardrobe"},
		medium:     []string{"bed-queen", "nightstand", "nightstand", "wardrobe", "dresser"},
		premium:    []string{"bed-king", "nightstand", "nightstand", "wardrobe-large", "dresser", "armchair", "rug"},
	},
	plan.Living: {
		economical: []string{"sofa-2", "coffee-table", "tv-stand"},
		medium:     []string{"sofa-3", "coffee-table", "tv-stand", "armchair", "bookshelf"},
		premium:    []string{"sofa-sectional", "coffee-table", "tv-stand", "armchair", "armchair", "bookshelf", "floor-lamp", "plant", "rug"},
	},
	plan.Kitchen: {
		economical: []string{"fridge", "stove", "kitchen-sink"},
		medium:     []string{"fridge", "stove", "kitchen-sink", "counter", "dishwasher"},
		premium:    []string{"fridge", "stove", "kitchen-sink", "counter", "dishwasher", "kitchen-island", "bar-stool", "bar-stool"},
	},
	plan.Dining: {
		economical: []string{"dining-table-4", "dining-chair", "dining-chair", "dining-chair", "dining-chair"},
		medium: []string{"dining-table-6", "dining-chair", "dining-chair", "dining-chair", "dining-chair",
			"dining-chair", "dining-chair", "sideboard"},
		premium: []string{"dining-table-8", "dining-chair", "dining-chair", "dining-chair", "dining-chair",
			"dining-chair", "dining-chair", "dining-chair", "dining-chair", "sideboard", "china-cabinet"},
	},
	plan.Bathroom: {
		economical: []string{"toilet", "bathroom-sink", "shower"},
		medium:     []string{"toilet", "vanity", "shower", "towel-rack"},
		premium:    []string{"toilet", "vanity", "shower", "bathtub", "towel-rack"},
	},
	plan.Office: {
		economical: []string{"desk", "office-chair"},
		medium:     []string{"desk", "office-chair", "filing-cabinet", "bookshelf"},
		premium:    []string{"desk-large", "ergonomic-chair", "filing-cabinet", "bookshelf", "whiteboard", "plant"},
	},
	plan.Laundry: {
		economical: []string{"washer"},
		medium:     []string{"washer", "dryer", "shelf"},
		premium:    []string{"washer", "dryer", "laundry-sink", "shelf", "ironing-board"},
	},
	plan.Hallway: {
		economical: []string{"coat-rack"},
		medium:     []string{"console-table", "coat-rack"},
		premium:    []string{"console-table", "coat-rack", "shoe-cabinet", "plant"},
	},
}

// Suggest returns the catalog ids to furnish a room of type t at budget
// tier. An unknown tier is treated as medium. The result is a fresh slice.
func Suggest(t plan.RoomType, tier plan.BudgetTier) []string {
	set, ok := suggestions[t]
	if !ok {
		return []string{}
	}
	return append([]string(nil), set.pick(tier)...)
}

// SuggestedIDs returns every id Suggest can return, without duplicates.
func SuggestedIDs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range plan.RoomTypes {
		for _, tier := range plan.BudgetTiers {
			for _, id := range Suggest(t, tier) {
				if !seen[id] {
					seen[id] = true
					out = append(out, id)
				}
			}
		}
	}
	return out
}
