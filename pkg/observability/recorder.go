package observability

import (
	"context"
	"sync"
)

// Recorder keeps every event it receives. It implements all four receiver
// interfaces, so one Recorder can be installed for everything:
//
//	rec := &observability.Recorder{}
//	observability.Install(rec.Hooks())
type Recorder struct {
	mu        sync.Mutex
	generates []GenerateEvent
	renders   []RenderEvent
	caches    []CacheEvent
	stores    []StoreEvent
	requests  []RequestEvent
	errors    []RequestEvent
}

// Hooks returns r installed for every receiver.
func (r *Recorder) Hooks() Hooks {
	return Hooks{Pipeline: r, Cache: r, Store: r, HTTP: r}
}

func (r *Recorder) OnGenerate(_ context.Context, e GenerateEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generates = append(r.generates, e)
}

func (r *Recorder) OnRender(_ context.Context, e RenderEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renders = append(r.renders, e)
}

func (r *Recorder) OnCache(_ context.Context, e CacheEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caches = append(r.caches, e)
}

func (r *Recorder) OnStore(_ context.Context, e StoreEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores = append(r.stores, e)
}

func (r *Recorder) OnRequest(_ context.Context, e RequestEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, e)
}

func (r *Recorder) OnError(_ context.Context, e RequestEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, e)
}

// Generates returns a copy of the recorded generate events.
func (r *Recorder) Generates() []GenerateEvent { return snapshot(&r.mu, r.generates) }

// Renders returns a copy of the recorded render events.
func (r *Recorder) Renders() []RenderEvent { return snapshot(&r.mu, r.renders) }

// CacheEvents returns a copy of the recorded cache events.
func (r *Recorder) CacheEvents() []CacheEvent { return snapshot(&r.mu, r.caches) }

// StoreEvents returns a copy of the recorded store events.
func (r *Recorder) StoreEvents() []StoreEvent { return snapshot(&r.mu, r.stores) }

// Requests returns a copy of the recorded request events.
func (r *Recorder) Requests() []RequestEvent { return snapshot(&r.mu, r.requests) }

// Errors returns a copy of the recorded request errors.
func (r *Recorder) Errors() []RequestEvent { return snapshot(&r.mu, r.errors) }

func snapshot[T any](mu *sync.Mutex, s []T) []T {
	mu.Lock()
	defer mu.Unlock()
	return append([]T(nil), s...)
}
