// Package catalog provides the furniture catalog the synthesizer draws item
// ids from.
//
// The built-in catalog ([Default]) covers every id the furniture curator
// suggests. Deployments can extend or override it with a TOML file:
//
//	[[item]]
//	id       = "bed-double"
//	name     = "Double Bed"
//	category = "bedroom"
//	width    = 1.4
//	depth    = 2.0
//	height   = 0.5
//	color    = "#8d6e63"
//
// Items loaded later replace items with the same id.
package catalog

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// Item is a single piece of furniture. Dimensions are in meters.
type Item struct {
	ID       string  `json:"id" toml:"id"`
	Name     string  `json:"name" toml:"name"`
	Category string  `json:"category" toml:"category"`
	Width    float64 `json:"width" toml:"width"`
	Depth    float64 `json:"depth" toml:"depth"`
	Height   float64 `json:"height" toml:"height"`
	Color    string  `json:"color" toml:"color"`
}

// Lookup resolves catalog ids.
type Lookup interface {
	// Item returns the item with the given id, or false if it is unknown.
	Item(id string) (Item, bool)
}

// Catalog is an in-memory item table. The zero value is not usable; create
// one with [New] or [Default].
type Catalog struct {
	items map[string]Item
}

// New builds a catalog from items.
func New(items ...Item) *Catalog {
	c := &Catalog{items: make(map[string]Item, len(items))}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

// Item implements Lookup.
func (c *Catalog) Item(id string) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Items returns every item sorted by category, then id.
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Merge returns a new catalog holding c's items overridden by other's.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	out := New(c.Items()...)
	if other != nil {
		for id, it := range other.items {
			out.items[id] = it
		}
	}
	return out
}

// =============================================================================
// TOML Loading
// =============================================================================

type file struct {
	Items []Item `toml:"item"`
}

// Decode reads a TOML catalog from r.
func Decode(r io.Reader) (*Catalog, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i, it := range f.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("catalog item %d: missing id", i)
		}
		if it.Width < 0 || it.Depth < 0 || it.Height < 0 {
			return nil, fmt.Errorf("catalog item %q: negative dimension", it.ID)
		}
	}
	return New(f.Items...), nil
}

// LoadFile reads a TOML catalog from path and merges it over [Default].
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Default().Merge(c), nil
}

var _ Lookup = (*Catalog)(nil)
