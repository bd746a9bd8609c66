package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	perrors "github.com/matzehuels/plansmith/pkg/errors"
	"github.com/matzehuels/plansmith/pkg/ids"
	"github.com/matzehuels/plansmith/pkg/observability"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

// clock returns a now func that advances one minute per call.
func clock() func() time.Time {
	t := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func generate(t *testing.T, rooms int) *plan.Plan {
	t.Helper()
	res, err := wizard.Generate(wizard.Config{
		ProjectType: plan.House,
		RoomCount:   rooms,
		TotalSize:   90,
		Budget:      plan.Medium,
	}, wizard.Deps{IDs: ids.NewHashed(ids.NamespaceFor([]byte{byte(rooms)}))})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res.Plan
}

func backends(t *testing.T) map[string]Store {
	t.Helper()
	mem := NewMemoryStore()
	mem.now = clock()

	sq, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "plans.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	sq.now = clock()
	t.Cleanup(func() { sq.Close() })

	return map[string]Store{"memory": mem, "sqlite": sq}
}

func TestSaveGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			p := generate(t, 3)
			if err := s.Save(ctx, p); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Get(ctx, p.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.ID != p.ID || got.Name != p.Name {
				t.Errorf("got %s %q, want %s %q", got.ID, got.Name, p.ID, p.Name)
			}
			if len(got.Rooms) != len(p.Rooms) || len(got.Walls) != len(p.Walls) || len(got.Furniture) != len(p.Furniture) {
				t.Errorf("collections differ after round trip")
			}
			if got.Stairs == nil || got.Annotations == nil {
				t.Errorf("editor collections should be empty, not nil")
			}
		})
	}
}

func TestGetMissing(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "plan_404")
			if !perrors.IsNotFound(err) || !errors.Is(err, ErrNotFound) {
				t.Errorf("Get missing: err = %v, want not found", err)
			}
			if err := s.Delete(ctx, "plan_404"); !perrors.IsNotFound(err) {
				t.Errorf("Delete missing: err = %v, want not found", err)
			}
		})
	}
}

func TestSaveRejectsBadPlans(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Save(ctx, nil); !perrors.IsInvalid(err) {
				t.Errorf("nil plan: err = %v", err)
			}
			if err := s.Save(ctx, plan.New("../etc", "x", 2.7)); !perrors.Is(err, perrors.ErrCodeInvalidPlanID) {
				t.Errorf("bad id: err = %v", err)
			}
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			first, second := generate(t, 2), generate(t, 5)
			for _, p := range []*plan.Plan{first, second} {
				if err := s.Save(ctx, p); err != nil {
					t.Fatal(err)
				}
			}
			list, err := s.List(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if len(list) != 2 {
				t.Fatalf("len = %d, want 2", len(list))
			}
			if list[0].ID != second.ID || list[1].ID != first.ID {
				t.Errorf("order = %s, %s", list[0].ID, list[1].ID)
			}
			if list[0].Rooms != 5 || list[0].Area != second.TotalArea() {
				t.Errorf("summary = %+v", list[0])
			}
		})
	}
}

func TestSaveReplaceKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			p := generate(t, 3)
			if err := s.Save(ctx, p); err != nil {
				t.Fatal(err)
			}
			before, _ := s.List(ctx)

			p.Name = "Renamed"
			if err := s.Save(ctx, p); err != nil {
				t.Fatal(err)
			}
			after, _ := s.List(ctx)
			if len(after) != 1 {
				t.Fatalf("len = %d, want 1", len(after))
			}
			if after[0].Name != "Renamed" {
				t.Errorf("name = %q", after[0].Name)
			}
			if !after[0].CreatedAt.Equal(before[0].CreatedAt) {
				t.Errorf("created_at changed: %v -> %v", before[0].CreatedAt, after[0].CreatedAt)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			p := generate(t, 4)
			if err := s.Save(ctx, p); err != nil {
				t.Fatal(err)
			}
			if err := s.Delete(ctx, p.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := s.Get(ctx, p.ID); !perrors.IsNotFound(err) {
				t.Errorf("Get after delete: err = %v", err)
			}
			list, _ := s.List(ctx)
			if len(list) != 0 {
				t.Errorf("list after delete = %v", list)
			}
		})
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	p := generate(t, 3)
	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	p.Rooms[0].Name = "Mutated"

	got, _ := s.Get(ctx, p.ID)
	if got.Rooms[0].Name == "Mutated" {
		t.Error("stored plan should not alias the caller's plan")
	}
}

func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "plans.db")

	s, err := NewSQLiteStore(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	p := generate(t, 2)
	if err := s.Save(ctx, p); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = NewSQLiteStore(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, err := s.Get(ctx, p.ID); err != nil {
		t.Errorf("Get after reopen: %v", err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %q", s.Path())
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, MemoryLocation)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Open(memory) = %T", s)
	}

	s, err = Open(ctx, filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("Open(path) = %T", s)
	}
}

func TestNewMongoStoreRejectsBadURI(t *testing.T) {
	_, err := NewMongoStore(context.Background(), "http://localhost:27017", "")
	if !perrors.IsInvalid(err) {
		t.Errorf("err = %v, want invalid input", err)
	}
}

func TestStoreHooks(t *testing.T) {
	rec := &observability.Recorder{}
	observability.Install(observability.Hooks{Store: rec})
	defer observability.Reset()

	ctx := context.Background()
	s := NewMemoryStore()
	p := generate(t, 1)
	_ = s.Save(ctx, p)
	_, _ = s.Get(ctx, p.ID)
	_, _ = s.List(ctx)
	_ = s.Delete(ctx, p.ID)

	var ops []string
	for _, e := range rec.StoreEvents() {
		ops = append(ops, e.Backend+"."+e.Op)
	}
	want := []string{"memory.save", "memory.get", "memory.list", "memory.delete"}
	if strings.Join(ops, " ") != strings.Join(want, " ") {
		t.Errorf("ops = %v, want %v", ops, want)
	}
}
