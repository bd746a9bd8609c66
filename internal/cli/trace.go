package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plansmith/pkg/observability"
)

// tracer logs pipeline, cache and store events at debug level.
type tracer struct {
	logger *log.Logger
}

// EnableTracing routes pipeline, cache and store events to the CLI logger.
// main enables it with --verbose.
func (c *CLI) EnableTracing() {
	t := &tracer{logger: c.Logger.WithPrefix("trace")}
	observability.Install(observability.Hooks{Pipeline: t, Cache: t, Store: t})
}

func (t *tracer) OnGenerate(_ context.Context, e observability.GenerateEvent) {
	t.logger.Debug("generate",
		"type", e.ProjectType,
		"requested", e.RoomCount,
		"rooms", e.Rooms,
		"walls", e.Walls,
		"openings", e.Openings,
		"strategy", e.Strategy,
		"cached", e.Cached,
		"duration", e.Duration,
		"err", e.Err)
}

func (t *tracer) OnRender(_ context.Context, e observability.RenderEvent) {
	t.logger.Debug("render", "formats", e.Formats, "cached", e.Cached, "duration", e.Duration, "err", e.Err)
}

func (t *tracer) OnCache(_ context.Context, e observability.CacheEvent) {
	if e.Op == observability.CacheSet {
		t.logger.Debug("cache "+string(e.Op), "kind", e.Kind, "bytes", e.Bytes)
		return
	}
	t.logger.Debug("cache "+string(e.Op), "kind", e.Kind)
}

func (t *tracer) OnStore(_ context.Context, e observability.StoreEvent) {
	t.logger.Debug("store", "backend", e.Backend, "op", e.Op, "duration", e.Duration, "err", e.Err)
}
