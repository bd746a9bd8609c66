package catalog

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultItems...)
}

var defaultItems = []Item{
	// Bedroom
	{ID: "bed-single", Name: "Single Bed", Category: "bedroom", Width: 0.9, Depth: 2.0, Height: 0.5, Color: "#a1887f"},
	{ID: "bed-double", Name: "Double Bed", Category: "bedroom", Width: 1.4, Depth: 2.0, Height: 0.5, Color: "#8d6e63"},
	{ID: "bed-queen", Name: "Queen Bed", Category: "bedroom", Width: 1.6, Depth: 2.1, Height: 0.55, Color: "#795548"},
	{ID: "bed-king", Name: "King Bed", Category: "bedroom", Width: 1.9, Depth: 2.1, Height: 0.55, Color: "#6d4c41"},
	{ID: "nightstand", Name: "Nightstand", Category: "bedroom", Width: 0.5, Depth: 0.4, Height: 0.55, Color: "#bcaaa4"},
	{ID: "wardrobe", Name: "Wardrobe", Category: "bedroom", Width: 1.2, Depth: 0.6, Height: 2.0, Color: "#d7ccc8"},
	{ID: "wardrobe-large", Name: "Walk-in Wardrobe Unit", Category: "bedroom", Width: 2.0, Depth: 0.6, Height: 2.2, Color: "#d7ccc8"},
	{ID: "dresser", Name: "Dresser", Category: "bedroom", Width: 1.2, Depth: 0.5, Height: 0.8, Color: "#a1887f"},

	// Living
	{ID: "sofa-2", Name: "Two-Seat Sofa", Category: "living", Width: 1.6, Depth: 0.85, Height: 0.85, Color: "#78909c"},
	{ID: "sofa-3", Name: "Three-Seat Sofa", Category: "living", Width: 2.2, Depth: 0.9, Height: 0.85, Color: "#607d8b"},
	{ID: "sofa-sectional", Name: "Sectional Sofa", Category: "living", Width: 2.8, Depth: 1.8, Height: 0.85, Color: "#546e7a"},
	{ID: "armchair", Name: "Armchair", Category: "living", Width: 0.8, Depth: 0.8, Height: 0.9, Color: "#90a4ae"},
	{ID: "coffee-table", Name: "Coffee Table", Category: "living", Width: 1.1, Depth: 0.6, Height: 0.45, Color: "#8d6e63"},
	{ID: "tv-stand", Name: "TV Stand", Category: "living", Width: 1.6, Depth: 0.4, Height: 0.5, Color: "#424242"},
	{ID: "bookshelf", Name: "Bookshelf", Category: "storage", Width: 0.9, Depth: 0.35, Height: 1.9, Color: "#a1887f"},
	{ID: "floor-lamp", Name: "Floor Lamp", Category: "lighting", Width: 0.4, Depth: 0.4, Height: 1.6, Color: "#fff59d"},
	{ID: "rug", Name: "Area Rug", Category: "decor", Width: 2.0, Depth: 1.4, Height: 0.01, Color: "#bdbdbd"},
	{ID: "plant", Name: "Potted Plant", Category: "decor", Width: 0.5, Depth: 0.5, Height: 1.2, Color: "#66bb6a"},

	// Kitchen
	{ID: "fridge", Name: "Refrigerator", Category: "kitchen", Width: 0.7, Depth: 0.7, Height: 1.8, Color: "#eceff1"},
	{ID: "stove", Name: "Stove", Category: "kitchen", Width: 0.6, Depth: 0.6, Height: 0.9, Color: "#cfd8dc"},
	{ID: "kitchen-sink", Name: "Kitchen Sink", Category: "kitchen", Width: 0.8, Depth: 0.6, Height: 0.9, Color: "#b0bec5"},
	{ID: "counter", Name: "Counter", Category: "kitchen", Width: 1.2, Depth: 0.6, Height: 0.9, Color: "#e0e0e0"},
	{ID: "dishwasher", Name: "Dishwasher", Category: "kitchen", Width: 0.6, Depth: 0.6, Height: 0.85, Color: "#cfd8dc"},
	{ID: "kitchen-island", Name: "Kitchen Island", Category: "kitchen", Width: 1.8, Depth: 0.9, Height: 0.9, Color: "#f5f5f5"},
	{ID: "bar-stool", Name: "Bar Stool", Category: "kitchen", Width: 0.4, Depth: 0.4, Height: 0.75, Color: "#5d4037"},

	// Dining
	{ID: "dining-table-4", Name: "Dining Table (4)", Category: "dining", Width: 1.2, Depth: 0.8, Height: 0.75, Color: "#8d6e63"},
	{ID: "dining-table-6", Name: "Dining Table (6)", Category: "dining", Width: 1.8, Depth: 0.9, Height: 0.75, Color: "#795548"},
	{ID: "dining-table-8", Name: "Dining Table (8)", Category: "dining", Width: 2.4, Depth: 1.0, Height: 0.75, Color: "#6d4c41"},
	{ID: "dining-chair", Name: "Dining Chair", Category: "dining", Width: 0.45, Depth: 0.5, Height: 0.9, Color: "#a1887f"},
	{ID: "sideboard", Name: "Sideboard", Category: "storage", Width: 1.6, Depth: 0.45, Height: 0.85, Color: "#8d6e63"},
	{ID: "china-cabinet", Name: "China Cabinet", Category: "storage", Width: 1.0, Depth: 0.45, Height: 1.9, Color: "#a1887f"},

	// Bathroom
	{ID: "toilet", Name: "Toilet", Category: "bathroom", Width: 0.4, Depth: 0.7, Height: 0.8, Color: "#ffffff"},
	{ID: "bathroom-sink", Name: "Washbasin", Category: "bathroom", Width: 0.6, Depth: 0.45, Height: 0.85, Color: "#ffffff"},
	{ID: "vanity", Name: "Vanity Unit", Category: "bathroom", Width: 1.2, Depth: 0.5, Height: 0.85, Color: "#eceff1"},
	{ID: "shower", Name: "Shower", Category: "bathroom", Width: 0.9, Depth: 0.9, Height: 2.0, Color: "#e3f2fd"},
	{ID: "bathtub", Name: "Bathtub", Category: "bathroom", Width: 1.7, Depth: 0.75, Height: 0.6, Color: "#ffffff"},
	{ID: "towel-rack", Name: "Towel Rack", Category: "bathroom", Width: 0.6, Depth: 0.1, Height: 1.0, Color: "#9e9e9e"},

	// Office
	{ID: "desk", Name: "Desk", Category: "office", Width: 1.2, Depth: 0.6, Height: 0.75, Color: "#a1887f"},
	{ID: "desk-large", Name: "Executive Desk", Category: "office", Width: 1.6, Depth: 0.8, Height: 0.75, Color: "#6d4c41"},
	{ID: "office-chair", Name: "Office Chair", Category: "office", Width: 0.6, Depth: 0.6, Height: 1.1, Color: "#424242"},
	{ID: "ergonomic-chair", Name: "Ergonomic Chair", Category: "office", Width: 0.7, Depth: 0.7, Height: 1.2, Color: "#212121"},
	{ID: "filing-cabinet", Name: "Filing Cabinet", Category: "storage", Width: 0.45, Depth: 0.6, Height: 1.3, Color: "#9e9e9e"},
	{ID: "whiteboard", Name: "Whiteboard", Category: "office", Width: 1.8, Depth: 0.05, Height: 1.2, Color: "#fafafa"},

	// Laundry
	{ID: "washer", Name: "Washing Machine", Category: "laundry", Width: 0.6, Depth: 0.6, Height: 0.85, Color: "#eceff1"},
	{ID: "dryer", Name: "Dryer", Category: "laundry", Width: 0.6, Depth: 0.6, Height: 0.85, Color: "#eceff1"},
	{ID: "laundry-sink", Name: "Utility Sink", Category: "laundry", Width: 0.6, Depth: 0.5, Height: 0.9, Color: "#b0bec5"},
	{ID: "shelf", Name: "Shelving Unit", Category: "storage", Width: 0.8, Depth: 0.3, Height: 1.8, Color: "#bdbdbd"},
	{ID: "ironing-board", Name: "Ironing Board", Category: "laundry", Width: 1.3, Depth: 0.35, Height: 0.9, Color: "#90a4ae"},

	// Hallway
	{ID: "console-table", Name: "Console Table", Category: "hallway", Width: 1.0, Depth: 0.35, Height: 0.8, Color: "#8d6e63"},
	{ID: "coat-rack", Name: "Coat Rack", Category: "hallway", Width: 0.5, Depth: 0.5, Height: 1.8, Color: "#5d4037"},
	{ID: "shoe-cabinet", Name: "Shoe Cabinet", Category: "hallway", Width: 0.8, Depth: 0.35, Height: 1.0, Color: "#d7ccc8"},
}
