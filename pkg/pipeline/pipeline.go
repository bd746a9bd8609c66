// Package pipeline provides the generate → render pipeline shared by the
// plansmith CLI and API server.
//
// Both entry points go through a [Runner] so caching, logging and hooks
// behave the same everywhere.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Generate: validate a [wizard.Config] and synthesize a plan
//  2. Render: encode the plan into one or more output formats
//
// Plans are cached by config hash and artifacts by plan hash. Generation
// is deterministic for a given config (ids are derived from the config by
// default), so a cache hit returns exactly what a fresh run would.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Config:  wizard.Config{ProjectType: plan.House, RoomCount: 4, TotalSize: 100},
//	    Formats: []string{"json", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run the stages separately:
//
//	res, err := runner.Generate(ctx, opts)
//	artifacts, err := runner.Render(ctx, res.Plan, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plansmith/pkg/cache"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/errors"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatXLSX = "xlsx"
)

// DefaultFormat is rendered when Options.Formats is empty.
const DefaultFormat = FormatJSON

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatXLSX: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",
	FormatSVG:  "image/svg+xml",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Config wizard.Config `json:"config"`

	// Clamp forces out-of-range config values into range instead of
	// rejecting them.
	Clamp bool `json:"clamp,omitempty"`

	// Refresh skips cache reads. Fresh results still replace cache entries.
	Refresh bool `json:"refresh,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // room sizes in adjacency labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Generation is the wizard result, including notes and advisories.
	Generation *wizard.Result

	// PlanHash is the content hash of the plan's JSON encoding.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Plan returns the generated plan.
func (r *Result) Plan() *plan.Plan { return r.Generation.Plan }

// Stats contains pipeline execution statistics.
type Stats struct {
	Rooms        int
	Walls        int
	Doors        int
	Windows      int
	Furniture    int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the plan came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, dot, svg, xlsx)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults validates the config and formats and applies
// defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate clamps (if requested), validates and normalizes the
// config.
func (o *Options) ValidateForGenerate() error {
	if o.Clamp {
		o.Config = o.Config.Clamp()
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	o.Config = o.Config.Normalize()
	o.setLogger()
	return nil
}

// ValidateForRender applies the default format and validates formats.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.setLogger()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	detailed := o.Detailed && (format == FormatDOT || format == FormatSVG)
	return cache.ArtifactKeyOpts{Format: format, Detailed: detailed}
}
