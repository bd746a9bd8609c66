// Package palette maps style ids to the wall and floor finishes applied to
// generated plans.
//
// Unknown styles are not an error: [Set.Resolve] falls back to the set's
// default style. Overrides are TOML tables keyed by style id:
//
//	[styles.coastal]
//	wall_color     = "#e0f7fa"
//	floor_material = "wood"
//	floor_color    = "#d7ccc8"
package palette

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// DefaultStyle is the style used when a requested style is unknown.
const DefaultStyle = "modern"

// Palette is the finish set for one style.
type Palette struct {
	WallColor     string `json:"wall_color" toml:"wall_color"`
	FloorMaterial string `json:"floor_material" toml:"floor_material"`
	FloorColor    string `json:"floor_color" toml:"floor_color"`
}

// Resolver maps a style id to a palette.
type Resolver interface {
	Resolve(styleID string) Palette
}

// Set is a static collection of palettes.
type Set struct {
	styles   map[string]Palette
	fallback string
}

// New builds a set. fallback must name one of styles.
func New(styles map[string]Palette, fallback string) (*Set, error) {
	if _, ok := styles[fallback]; !ok {
		return nil, fmt.Errorf("fallback style %q not defined", fallback)
	}
	cp := make(map[string]Palette, len(styles))
	for k, v := range styles {
		cp[k] = v
	}
	return &Set{styles: cp, fallback: fallback}, nil
}

// Default returns the built-in styles.
func Default() *Set {
	s, _ := New(builtin, DefaultStyle)
	return s
}

var builtin = map[string]Palette{
	"modern":       {WallColor: "#f5f5f5", FloorMaterial: "concrete", FloorColor: "#bdbdbd"},
	"classic":      {WallColor: "#fff8e1", FloorMaterial: "wood", FloorColor: "#8d6e63"},
	"minimalist":   {WallColor: "#ffffff", FloorMaterial: "tile", FloorColor: "#eeeeee"},
	"rustic":       {WallColor: "#efebe9", FloorMaterial: "wood", FloorColor: "#6d4c41"},
	"industrial":   {WallColor: "#cfd8dc", FloorMaterial: "concrete", FloorColor: "#757575"},
	"scandinavian": {WallColor: "#fafafa", FloorMaterial: "wood", FloorColor: "#d7ccc8"},
}

// Resolve implements Resolver.
func (s *Set) Resolve(styleID string) Palette {
	if p, ok := s.styles[styleID]; ok {
		return p
	}
	return s.styles[s.fallback]
}

// Has reports whether styleID is defined.
func (s *Set) Has(styleID string) bool {
	_, ok := s.styles[styleID]
	return ok
}

// Styles returns the defined style ids, sorted.
func (s *Set) Styles() []string {
	out := make([]string, 0, len(s.styles))
	for k := range s.styles {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Merge returns a set with other's styles layered over s. Fields left
// empty in other keep s's value.
func (s *Set) Merge(other map[string]Palette) *Set {
	out := &Set{styles: make(map[string]Palette, len(s.styles)+len(other)), fallback: s.fallback}
	for k, v := range s.styles {
		out.styles[k] = v
	}
	for k, v := range other {
		base := out.styles[k]
		if v.WallColor != "" {
			base.WallColor = v.WallColor
		}
		if v.FloorMaterial != "" {
			base.FloorMaterial = v.FloorMaterial
		}
		if v.FloorColor != "" {
			base.FloorColor = v.FloorColor
		}
		out.styles[k] = base
	}
	return out
}

// =============================================================================
// TOML Loading
// =============================================================================

type file struct {
	Styles map[string]Palette `toml:"styles"`
}

// Decode reads style overrides from r.
func Decode(r io.Reader) (map[string]Palette, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode palettes: %w", err)
	}
	return f.Styles, nil
}

// LoadFile reads overrides from path and merges them over [Default].
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	styles, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Default().Merge(styles), nil
}

var _ Resolver = (*Set)(nil)
