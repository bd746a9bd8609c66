package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plansmith/pkg/cache"
	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/core/packing"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/walls"
	"github.com/matzehuels/plansmith/pkg/ids"
	"github.com/matzehuels/plansmith/pkg/observability"
	"github.com/matzehuels/plansmith/pkg/palette"
	"github.com/matzehuels/plansmith/pkg/planio"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

// ID schemes understood by NewRunner's callers.
const (
	IDSchemeHashed     = "hashed"
	IDSchemeSequential = "sequential"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// IDs mints one generator per plan, seeded with the config key.
	// IDScheme names it in plan cache keys.
	IDs      ids.Factory
	IDScheme string

	Catalog *catalog.Catalog
	Palette *palette.Set
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// Ids are hashed from the config; catalog and palettes are the defaults.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		IDs:      ids.HashedFactory(),
		IDScheme: IDSchemeHashed,
		Catalog:  catalog.Default(),
		Palette:  palette.Default(),
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Generate
	genStart := time.Now()
	gen, genHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	p := gen.Plan
	result.Generation = gen
	result.Stats = Stats{
		Rooms:        len(p.Rooms),
		Walls:        len(p.Walls),
		Doors:        len(p.Doors),
		Windows:      len(p.Windows),
		Furniture:    len(p.Furniture),
		GenerateTime: time.Since(genStart),
	}
	result.CacheInfo.GenerateHit = genHit

	opts.Logger.Info("generated plan",
		"id", p.ID,
		"rooms", len(p.Rooms),
		"walls", len(p.Walls),
		"strategy", gen.Strategy,
		"cached", genHit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, planHash, renderHit, err := r.renderWithHash(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.PlanHash = planHash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// =============================================================================
// Generate
// =============================================================================

// cachedGeneration is the cached form of a wizard result. Wall
// classifications are recomputed on load.
type cachedGeneration struct {
	Plan          *plan.Plan        `json:"plan"`
	Strategy      packing.Strategy  `json:"strategy"`
	Advisories    []wizard.Advisory `json:"advisories"`
	RequestedArea float64           `json:"requested_area"`
	AllocatedArea float64           `json:"allocated_area"`
	Notes         []string          `json:"notes,omitempty"`
}

// GenerateWithCacheInfo generates a plan with caching and returns cache hit
// info. Notes are logged as warnings on hits and misses alike.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (res *wizard.Result, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}

	cfg := opts.Config
	start := time.Now()
	defer func() {
		e := observability.GenerateEvent{
			ProjectType: string(cfg.ProjectType),
			RoomCount:   cfg.RoomCount,
			Cached:      hit,
			Duration:    time.Since(start),
			Err:         err,
		}
		if res != nil {
			e.Rooms, e.Walls = len(res.Plan.Rooms), len(res.Plan.Walls)
			e.Openings = len(res.Plan.Doors) + len(res.Plan.Windows)
			e.Strategy = string(res.Strategy)
		}
		observability.Pipeline().OnGenerate(ctx, e)
	}()

	cacheKey := r.Keyer.PlanKey(cache.Hash(cfg.Key()), r.planKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, ok := r.loadGeneration(ctx, cacheKey); ok {
			cacheEvent(ctx, "plan", observability.CacheHit, 0)
			r.logNotes(opts.Logger, cached)
			return cached, true, nil
		}
		cacheEvent(ctx, "plan", observability.CacheMiss, 0)
	}

	res, err = wizard.Generate(cfg, wizard.Deps{
		IDs:     r.IDs(cfg.Key()),
		Catalog: r.Catalog,
		Palette: r.Palette,
	})
	if err != nil {
		return nil, false, err
	}
	r.logNotes(opts.Logger, res)

	// Cache the result
	data, merr := json.Marshal(cachedGeneration{
		Plan:          res.Plan,
		Strategy:      res.Strategy,
		Advisories:    res.Advisories,
		RequestedArea: res.RequestedArea,
		AllocatedArea: res.AllocatedArea,
		Notes:         res.Notes,
	})
	if merr == nil && r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan) == nil {
		cacheEvent(ctx, "plan", observability.CacheSet, len(data))
	}
	return res, false, nil
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*wizard.Result, error) {
	res, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return res, err
}

func (r *Runner) loadGeneration(ctx context.Context, key string) (*wizard.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return nil, false
	}
	var c cachedGeneration
	if err := json.Unmarshal(data, &c); err != nil || c.Plan == nil {
		// If deserialization fails, fall through to regenerate
		return nil, false
	}
	if err := planio.Validate(c.Plan); err != nil {
		return nil, false
	}
	if c.Advisories == nil {
		c.Advisories = []wizard.Advisory{}
	}
	return &wizard.Result{
		Plan:            c.Plan,
		Strategy:        c.Strategy,
		Classifications: walls.Classify(c.Plan.Walls, c.Plan.PlacedRooms()),
		Advisories:      c.Advisories,
		RequestedArea:   c.RequestedArea,
		AllocatedArea:   c.AllocatedArea,
		Notes:           c.Notes,
	}, true
}

func (r *Runner) logNotes(logger *log.Logger, res *wizard.Result) {
	for _, note := range res.Notes {
		logger.Warn(note, "plan", res.Plan.ID)
	}
	for _, a := range res.Advisories {
		logger.Debug("proportion advisory", "room", a.RoomName, "issues", a.Issues)
	}
}

// planKeyOpts identifies the collaborators that shape a generated plan.
func (r *Runner) planKeyOpts() cache.PlanKeyOpts {
	opts := cache.PlanKeyOpts{IDScheme: r.IDScheme}
	if data, err := json.Marshal(r.Catalog.Items()); err == nil {
		opts.CatalogHash = cache.Hash(data)
	}
	styles := make(map[string]palette.Palette)
	for _, s := range r.Palette.Styles() {
		styles[s] = r.Palette.Resolve(s)
	}
	if data, err := json.Marshal(styles); err == nil {
		opts.PaletteHash = cache.Hash(data)
	}
	return opts
}

// =============================================================================
// Render
// =============================================================================

// RenderWithCacheInfo renders p with caching and returns cache hit info.
// The hit is true only when every format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *plan.Plan, opts Options) (map[string][]byte, bool, error) {
	artifacts, _, hit, err := r.renderWithHash(ctx, p, opts)
	return artifacts, hit, err
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p *plan.Plan, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

func (r *Runner) renderWithHash(ctx context.Context, p *plan.Plan, opts Options) (artifacts map[string][]byte, planHash string, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}

	start := time.Now()
	defer func() {
		observability.Pipeline().OnRender(ctx, observability.RenderEvent{
			Formats:  opts.Formats,
			Cached:   hit,
			Duration: time.Since(start),
			Err:      err,
		})
	}()

	// Compute cache key from plan data
	planData, err := planio.MarshalPlan(p)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize plan for cache key: %w", err)
	}
	planHash = cache.Hash(planData)

	// Try to get all formats from cache
	artifacts = make(map[string][]byte)
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
			data, ok, err := r.Cache.Get(ctx, key)
			if err != nil || !ok {
				cacheEvent(ctx, "artifact", observability.CacheMiss, 0)
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			cacheEvent(ctx, "artifact", observability.CacheHit, 0)
			return artifacts, planHash, true, nil
		}
	}

	// Render all formats
	rendered, err := Render(p, opts, r.Catalog)
	if err != nil {
		return nil, "", false, err
	}

	// Cache each format
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		if r.Cache.Set(ctx, key, data, cache.TTLArtifact) == nil {
			cacheEvent(ctx, "artifact", observability.CacheSet, len(data))
		}
	}
	return rendered, planHash, false, nil
}

func cacheEvent(ctx context.Context, kind string, op observability.CacheOp, n int) {
	observability.Cache().OnCache(ctx, observability.CacheEvent{Kind: kind, Op: op, Bytes: n})
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
