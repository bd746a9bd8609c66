package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plansmith/pkg/api"
	"github.com/matzehuels/plansmith/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string
	store    string
	catalog  string
	palettes string
	scope    string
	noCache  bool
}

// serveCommand creates the command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr}
	if addr := os.Getenv(envAddr); addr != "" {
		opts.addr = addr
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the plansmith HTTP API. Generated plans are saved to the store:
the SQLite history database by default, MongoDB when PLANSMITH_MONGO_URI is
set, or memory with --store memory. PLANSMITH_REDIS_URL selects a shared
Redis cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, runnerOpts{noCache: opts.noCache, catalog: opts.catalog, palettes: opts.palettes, scope: opts.scope})
			if err != nil {
				return err
			}
			defer runner.Close()

			loc, err := storeLocation(opts.store)
			if err != nil {
				return err
			}
			st, err := store.Open(ctx, loc)
			if err != nil {
				return err
			}
			defer st.Close()
			c.Logger.Info("opened store", "type", storeType(st))

			return api.New(runner, st, c.Logger).ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address (env PLANSMITH_ADDR)")
	cmd.Flags().StringVar(&opts.store, "store", "", "plan store: memory, a SQLite path or a mongodb:// URI")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "TOML file adding or replacing furniture catalog items")
	cmd.Flags().StringVar(&opts.palettes, "palettes", "", "TOML file adding or replacing style palettes")
	cmd.Flags().StringVar(&opts.scope, "cache-scope", "", "prefix for cache keys when several deployments share one Redis")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func storeType(st store.Store) string {
	switch s := st.(type) {
	case *store.MemoryStore:
		return store.MemoryLocation
	case *store.SQLiteStore:
		return "sqlite " + s.Path()
	case *store.MongoStore:
		return "mongodb"
	}
	return "custom"
}
