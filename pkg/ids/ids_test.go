package ids

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestSequential(t *testing.T) {
	g := NewSequential()
	got := []string{g.Next("wall"), g.Next("wall"), g.Next("door"), g.Next("wall")}
	want := []string{"wall_1", "wall_2", "door_1", "wall_3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Next #%d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSequentialConcurrent(t *testing.T) {
	g := NewSequential()
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := g.Next("room")
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != 800 {
		t.Errorf("expected 800 unique ids, got %d", len(seen))
	}
}

func TestHashedDeterministic(t *testing.T) {
	a := NewHashed(NamespaceFor([]byte("config-a")))
	b := NewHashed(NamespaceFor([]byte("config-a")))
	c := NewHashed(NamespaceFor([]byte("config-b")))

	for i := 0; i < 5; i++ {
		ida, idb, idc := a.Next("wall"), b.Next("wall"), c.Next("wall")
		if ida != idb {
			t.Errorf("same namespace produced %q and %q", ida, idb)
		}
		if ida == idc {
			t.Errorf("different namespaces collided on %q", ida)
		}
		if !strings.HasPrefix(ida, "wall_") {
			t.Errorf("missing prefix: %q", ida)
		}
		if _, err := uuid.Parse(strings.TrimPrefix(ida, "wall_")); err != nil {
			t.Errorf("suffix is not a UUID: %q", ida)
		}
	}
}

func TestRandomUnique(t *testing.T) {
	g := NewRandom()
	if g.Next("plan") == g.Next("plan") {
		t.Error("random ids should not repeat")
	}
}

func TestFactoriesReturnFreshGenerators(t *testing.T) {
	for name, f := range map[string]Factory{
		"sequential": SequentialFactory(),
		"hashed":     HashedFactory(),
	} {
		first := f([]byte("seed")).Next("plan")
		second := f([]byte("seed")).Next("plan")
		if first != second {
			t.Errorf("%s: fresh generators disagree: %q vs %q", name, first, second)
		}
	}
}
