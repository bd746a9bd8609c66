// Package observability lets a binary observe plan generation, caching,
// plan storage and API traffic without the library packages importing a
// metrics or tracing backend.
//
// Library code reports one event per finished operation:
//
//	observability.Pipeline().OnGenerate(ctx, observability.GenerateEvent{...})
//
// and main installs whatever receivers it wants once at startup:
//
//	observability.Install(observability.Hooks{Pipeline: myMetrics})
//
// Receivers left nil in [Install] keep their current value; everything
// starts out as a no-op.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// =============================================================================
// Events
// =============================================================================

// GenerateEvent describes one plan generation, fresh or served from cache.
type GenerateEvent struct {
	ProjectType string
	RoomCount   int // requested
	Rooms       int // produced
	Walls       int
	Openings    int
	Strategy    string
	Cached      bool
	Duration    time.Duration
	Err         error
}

// RenderEvent describes rendering one plan into a set of formats.
type RenderEvent struct {
	Formats  []string
	Cached   bool
	Duration time.Duration
	Err      error
}

// CacheOp is the outcome of a cache access.
type CacheOp string

const (
	CacheHit  CacheOp = "hit"
	CacheMiss CacheOp = "miss"
	CacheSet  CacheOp = "set"
)

// CacheEvent describes one cache access. Kind is "plan" or "artifact".
type CacheEvent struct {
	Kind  string
	Op    CacheOp
	Bytes int
}

// StoreEvent describes one plan store call.
type StoreEvent struct {
	Backend  string // memory, sqlite or mongo
	Op       string // save, get, list or delete
	Duration time.Duration
	Err      error
}

// RequestEvent describes one API request. Route is the router pattern,
// not the raw path, when one matched.
type RequestEvent struct {
	Method   string
	Route    string
	Status   int
	Duration time.Duration
	Err      error
}

// =============================================================================
// Receivers
// =============================================================================

// PipelineHooks receives generation and render events.
type PipelineHooks interface {
	OnGenerate(ctx context.Context, e GenerateEvent)
	OnRender(ctx context.Context, e RenderEvent)
}

// CacheHooks receives cache events.
type CacheHooks interface {
	OnCache(ctx context.Context, e CacheEvent)
}

// StoreHooks receives plan store events.
type StoreHooks interface {
	OnStore(ctx context.Context, e StoreEvent)
}

// HTTPHooks receives API events. OnError fires only for requests that
// failed with a server-side error.
type HTTPHooks interface {
	OnRequest(ctx context.Context, e RequestEvent)
	OnError(ctx context.Context, e RequestEvent)
}

type (
	NoopPipelineHooks struct{}
	NoopCacheHooks    struct{}
	NoopStoreHooks    struct{}
	NoopHTTPHooks     struct{}
)

func (NoopPipelineHooks) OnGenerate(context.Context, GenerateEvent) {}
func (NoopPipelineHooks) OnRender(context.Context, RenderEvent)     {}
func (NoopCacheHooks) OnCache(context.Context, CacheEvent)          {}
func (NoopStoreHooks) OnStore(context.Context, StoreEvent)          {}
func (NoopHTTPHooks) OnRequest(context.Context, RequestEvent)       {}
func (NoopHTTPHooks) OnError(context.Context, RequestEvent)         {}

// =============================================================================
// Registry
// =============================================================================

// Hooks is the full set of installed receivers.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	Store    StoreHooks
	HTTP     HTTPHooks
}

func noop() *Hooks {
	return &Hooks{
		Pipeline: NoopPipelineHooks{},
		Cache:    NoopCacheHooks{},
		Store:    NoopStoreHooks{},
		HTTP:     NoopHTTPHooks{},
	}
}

var current atomic.Pointer[Hooks]

func init() { current.Store(noop()) }

// Install replaces the non-nil receivers in h and keeps the rest.
func Install(h Hooks) {
	for {
		old := current.Load()
		next := *old
		if h.Pipeline != nil {
			next.Pipeline = h.Pipeline
		}
		if h.Cache != nil {
			next.Cache = h.Cache
		}
		if h.Store != nil {
			next.Store = h.Store
		}
		if h.HTTP != nil {
			next.HTTP = h.HTTP
		}
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Reset restores the no-op receivers.
func Reset() { current.Store(noop()) }

func Pipeline() PipelineHooks { return current.Load().Pipeline }
func Cache() CacheHooks       { return current.Load().Cache }
func Store() StoreHooks       { return current.Load().Store }
func HTTP() HTTPHooks         { return current.Load().HTTP }
