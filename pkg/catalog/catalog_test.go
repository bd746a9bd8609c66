package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLookup(t *testing.T) {
	c := Default()
	it, ok := c.Item("bed-double")
	if !ok {
		t.Fatal("bed-double should exist")
	}
	if it.Width != 1.4 || it.Depth != 2.0 {
		t.Errorf("unexpected bed-double dimensions: %+v", it)
	}
	if _, ok := c.Item("hovercraft"); ok {
		t.Error("unknown id should miss")
	}
}

func TestDefaultUniqueIDs(t *testing.T) {
	if Default().Len() != len(defaultItems) {
		t.Errorf("duplicate ids in default catalog: %d items, %d unique", len(defaultItems), Default().Len())
	}
}

func TestItemsSorted(t *testing.T) {
	items := Default().Items()
	for i := 1; i < len(items); i++ {
		a, b := items[i-1], items[i]
		if a.Category > b.Category || (a.Category == b.Category && a.ID > b.ID) {
			t.Fatalf("items out of order at %d: %s/%s before %s/%s", i, a.Category, a.ID, b.Category, b.ID)
		}
	}
}

func TestDecode(t *testing.T) {
	input := `
[[item]]
id = "hammock"
name = "Hammock"
category = "decor"
width = 1.0
depth = 3.0
height = 1.0
color = "#ffcc80"

[[item]]
id = "bed-double"
name = "Custom Double"
category = "bedroom"
width = 1.5
depth = 2.0
height = 0.5
`
	c, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	merged := Default().Merge(c)
	if it, _ := merged.Item("bed-double"); it.Width != 1.5 {
		t.Errorf("override not applied: %+v", it)
	}
	if _, ok := merged.Item("hammock"); !ok {
		t.Error("new item missing after merge")
	}
	if _, ok := merged.Item("toilet"); !ok {
		t.Error("default item lost after merge")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing id", "[[item]]\nname = \"x\"\n"},
		{"negative", "[[item]]\nid = \"x\"\nwidth = -1.0\n"},
		{"syntax", "[[item]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte("[[item]]\nid = \"hammock\"\nwidth = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != Default().Len()+1 {
		t.Errorf("Len = %d, want %d", c.Len(), Default().Len()+1)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}
