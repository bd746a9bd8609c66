package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	s := Default()
	tests := []struct {
		style string
		want  string
	}{
		{"modern", "concrete"},
		{"rustic", "wood"},
		{"minimalist", "tile"},
		{"vaporwave", "concrete"},
		{"", "concrete"},
	}
	for _, tt := range tests {
		if got := s.Resolve(tt.style).FloorMaterial; got != tt.want {
			t.Errorf("Resolve(%q).FloorMaterial = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestStyles(t *testing.T) {
	got := Default().Styles()
	if len(got) != 6 {
		t.Fatalf("Styles() = %v, want 6 entries", got)
	}
	if got[0] != "classic" {
		t.Errorf("Styles()[0] = %q, want classic", got[0])
	}
}

func TestNewUnknownFallback(t *testing.T) {
	if _, err := New(map[string]Palette{"a": {}}, "b"); err == nil {
		t.Error("expected error for undefined fallback")
	}
}

func TestDecodeAndMerge(t *testing.T) {
	input := `
[styles.coastal]
wall_color = "#e0f7fa"
floor_material = "wood"
floor_color = "#d7ccc8"

[styles.modern]
floor_color = "#9e9e9e"
`
	styles, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	s := Default().Merge(styles)

	if !s.Has("coastal") {
		t.Error("coastal style missing")
	}
	m := s.Resolve("modern")
	if m.FloorColor != "#9e9e9e" {
		t.Errorf("modern floor color = %q, want override", m.FloorColor)
	}
	if m.FloorMaterial != "concrete" {
		t.Errorf("modern floor material = %q, want unchanged concrete", m.FloorMaterial)
	}
	if Default().Resolve("modern").FloorColor == "#9e9e9e" {
		t.Error("Merge mutated the default set")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.toml")
	if err := os.WriteFile(path, []byte("[styles.coastal]\nwall_color = \"#e0f7fa\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := s.Resolve("coastal").WallColor; got != "#e0f7fa" {
		t.Errorf("coastal wall color = %q", got)
	}

	if _, err := LoadFile(path + ".missing"); err == nil {
		t.Error("missing file should fail")
	}
}
