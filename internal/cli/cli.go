// Package cli implements the plansmith command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plansmith/pkg/buildinfo"
	"github.com/matzehuels/plansmith/pkg/cache"
	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/ids"
	"github.com/matzehuels/plansmith/pkg/palette"
	"github.com/matzehuels/plansmith/pkg/pipeline"
	"github.com/matzehuels/plansmith/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "plansmith"

	// historyFile is the SQLite database holding saved plans.
	historyFile = "history.db"

	// defaultAddr is the listen address of `plansmith serve`.
	defaultAddr = ":8080"
)

// Environment variables.
const (
	envRedisURL = "PLANSMITH_REDIS_URL"
	envMongoURI = "PLANSMITH_MONGO_URI"
	envDB       = "PLANSMITH_DB"
	envAddr     = "PLANSMITH_ADDR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Plansmith generates furnished floor plans from a few parameters",
		Long:         `Plansmith turns a project type, room count, total area, style and budget into a complete floor plan with walls, doors, windows and furniture, ready for a floor-plan editor.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.wizardCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// runnerOpts selects the collaborators of a CLI runner.
type runnerOpts struct {
	noCache  bool
	catalog  string // TOML catalog override file
	palettes string // TOML palette override file
	ids      string // id scheme: hashed (default) or sequential
	scope    string // cache key prefix for shared caches
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, opts runnerOpts) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, opts.noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(cc, nil, c.Logger)

	switch opts.ids {
	case "", pipeline.IDSchemeHashed:
	case pipeline.IDSchemeSequential:
		runner.IDs = ids.SequentialFactory()
		runner.IDScheme = pipeline.IDSchemeSequential
	default:
		cc.Close()
		return nil, fmt.Errorf("invalid id scheme: %q (must be hashed or sequential)", opts.ids)
	}
	if opts.scope != "" {
		runner.Keyer = cache.NewScopedKeyer(runner.Keyer, opts.scope+":")
	}

	if opts.catalog != "" {
		cat, err := catalog.LoadFile(opts.catalog)
		if err != nil {
			cc.Close()
			return nil, err
		}
		runner.Catalog = cat
		c.Logger.Debug("loaded catalog", "path", opts.catalog, "items", cat.Len())
	}
	if opts.palettes != "" {
		set, err := palette.LoadFile(opts.palettes)
		if err != nil {
			cc.Close()
			return nil, err
		}
		runner.Palette = set
		c.Logger.Debug("loaded palettes", "path", opts.palettes, "styles", len(set.Styles()))
	}
	return runner, nil
}

// newCache returns the Redis cache when PLANSMITH_REDIS_URL is set, the
// file cache otherwise. A cache directory that cannot be resolved
// disables caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := os.Getenv(envRedisURL); url != "" {
		return cache.NewRedisCache(ctx, url, appName+":")
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// openStore opens the plan store named by storeLocation("").
func openStore(ctx context.Context) (store.Store, error) {
	loc, err := storeLocation("")
	if err != nil {
		return nil, err
	}
	return store.Open(ctx, loc)
}

// storeLocation resolves where plans are kept: an explicit location, then
// PLANSMITH_MONGO_URI, then the SQLite history database.
func storeLocation(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if uri := os.Getenv(envMongoURI); uri != "" {
		return uri, nil
	}
	return historyPath()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/plansmith/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// historyPath returns PLANSMITH_DB, or the history database under the XDG
// data directory (~/.local/share/plansmith/history.db).
func historyPath() (string, error) {
	if p := os.Getenv(envDB); p != "" {
		return p, nil
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, historyFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, historyFile), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatJSON}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
