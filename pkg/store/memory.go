package store

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/planio"
)

const backendMemory = "memory"

// MemoryStore keeps plans in memory. Plans are stored as encoded JSON so
// callers cannot mutate a stored plan through a returned pointer.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]memoryEntry
	now   func() time.Time
}

type memoryEntry struct {
	body    []byte
	summary Summary
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]memoryEntry), now: time.Now}
}

// Save stores a copy of p.
func (s *MemoryStore) Save(ctx context.Context, p *plan.Plan) (err error) {
	defer func(start time.Time) { observe(ctx, backendMemory, "save", start, err) }(time.Now())
	if err := checkPlan(p); err != nil {
		return err
	}
	body, err := planio.MarshalPlan(p)
	if err != nil {
		return storageErr(err, "encode plan")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	created := s.now().UTC()
	if old, ok := s.plans[p.ID]; ok {
		created = old.summary.CreatedAt
	}
	s.plans[p.ID] = memoryEntry{body: body, summary: Summarize(p, created)}
	return nil
}

// Get returns a copy of the stored plan.
func (s *MemoryStore) Get(ctx context.Context, id string) (p *plan.Plan, err error) {
	defer func(start time.Time) { observe(ctx, backendMemory, "get", start, err) }(time.Now())
	s.mu.RLock()
	e, ok := s.plans[id]
	s.mu.RUnlock()
	if !ok {
		return nil, notFound(id)
	}
	p, err = planio.UnmarshalPlan(e.body)
	if err != nil {
		return nil, storageErr(err, "decode plan")
	}
	return p, nil
}

// List returns every summary, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]Summary, error) {
	defer func(start time.Time) { observe(ctx, backendMemory, "list", start, nil) }(time.Now())
	s.mu.RLock()
	out := make([]Summary, 0, len(s.plans))
	for _, e := range s.plans {
		out = append(out, e.summary)
	}
	s.mu.RUnlock()
	sortSummaries(out)
	return out, nil
}

// Delete removes a plan.
func (s *MemoryStore) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { observe(ctx, backendMemory, "delete", start, err) }(time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plans[id]; !ok {
		return notFound(id)
	}
	delete(s.plans, id)
	return nil
}

// Close does nothing.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
