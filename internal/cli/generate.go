package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/pipeline"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

// defaultOutput is the base name of generated files when --output is empty.
const defaultOutput = "plan"

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output   string // output file (single format) or base path (multiple)
	formats  string // comma-separated output formats
	catalog  string // TOML catalog override
	palettes string // TOML palette override
	noCache  bool
	refresh  bool
	detailed bool // room sizes in adjacency labels
	save     bool // record the plan in the history database
	ids      string
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts
	cf := newConfigFlags()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a floor plan",
		Long: `Generate a furnished floor plan from a project type, room count, total
area, style and budget. Values come from flags, a TOML file given with
--config, or the defaults (a four-room 100 m² medium-budget house).`,
		Example: `  plansmith generate --type apartment --rooms 3 --size 70
  plansmith generate -c office.toml -f json,svg,xlsx -o office
  plansmith generate --rooms 12 --clamp --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.config(cmd)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), cfg, cf.clamp, opts)
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): json (default), dot, svg, xlsx (comma-separated)")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "TOML file adding or replacing furniture catalog items")
	cmd.Flags().StringVar(&opts.palettes, "palettes", "", "TOML file adding or replacing style palettes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show room sizes in adjacency diagrams")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the plan to the local history")
	cmd.Flags().StringVar(&opts.ids, "ids", pipeline.IDSchemeHashed, "id scheme: hashed (stable per config) or sequential (wall_1, wall_2, ...)")

	return cmd
}

// runGenerate runs the pipeline for cfg and writes one file per format.
func (c *CLI) runGenerate(ctx context.Context, cfg wizard.Config, clamp bool, opts generateOpts) error {
	formats := parseFormats(opts.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}
	// Sequential ids repeat across plans and would overwrite saved ones.
	if opts.save && opts.ids == pipeline.IDSchemeSequential {
		return fmt.Errorf("--save requires hashed ids")
	}

	runner, err := c.newRunner(ctx, runnerOpts{noCache: opts.noCache, catalog: opts.catalog, palettes: opts.palettes, ids: opts.ids})
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %d-room %s...", cfg.RoomCount, cfg.ProjectType))
	spinner.Start()

	res, err := runner.Execute(ctx, pipeline.Options{
		Config:   cfg,
		Clamp:    clamp,
		Refresh:  opts.refresh,
		Formats:  formats,
		Detailed: opts.detailed,
	})
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	p := res.Plan()
	printSuccess("Generated %s", StyleHighlight.Render(p.Name))
	printStats(res.Stats, res.CacheInfo.GenerateHit)
	printDetail("%.1f m² allocated of %.1f m² requested · %s packing",
		res.Generation.AllocatedArea, res.Generation.RequestedArea, res.Generation.Strategy)

	paths, err := writeArtifacts(res.Artifacts, formats, opts.output)
	if err != nil {
		return err
	}
	for _, path := range paths {
		printFile(path)
	}

	if opts.save {
		if err := savePlan(ctx, p); err != nil {
			return err
		}
		printSuccess("Saved %s", StyleHighlight.Render(p.ID))
	}

	if n := len(res.Generation.Advisories); n > 0 {
		printNewline()
		printWarning("%d room(s) have proportion advisories", n)
		for i, f := range formats {
			if f == pipeline.FormatJSON {
				printNextStep("Inspect", "plansmith inspect "+paths[i])
			}
		}
	}
	return nil
}

// savePlan records p in the plan store.
func savePlan(ctx context.Context, p *plan.Plan) error {
	spinner := newSpinnerWithContext(ctx, "Opening history...")
	spinner.Start()
	defer spinner.Stop()

	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	spinner.SetMessage(fmt.Sprintf("Saving %s...", p.ID))
	return st.Save(ctx, p)
}

// writeArtifacts writes each rendered format to disk and returns the
// paths in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := outputPath(output, f, len(formats) == 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath derives the file for one format. A single format writes to
// output as given unless it lacks an extension; multiple formats share
// output as a base path with a known extension stripped.
func outputPath(output, format string, single bool) string {
	if output == "" {
		return defaultOutput + "." + format
	}
	ext := filepath.Ext(output)
	if single && ext != "" {
		return output
	}
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		output = strings.TrimSuffix(output, ext)
	}
	return output + "." + format
}
