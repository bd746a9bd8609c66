package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plansmith/pkg/pipeline"
	"github.com/matzehuels/plansmith/pkg/planio"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string
	formats  string
	catalog  string
	detailed bool
	noCache  bool
}

// renderCommand creates the render command, which renders an existing plan
// file (for example one edited by hand) without regenerating it.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [plan.json]",
		Short: "Render a plan file as an adjacency diagram or schedule",
		Example: `  plansmith render plan.json
  plansmith render plan.json -f dot,xlsx --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "output format(s): svg (default), dot, xlsx, json (comma-separated)")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "TOML catalog override used by the xlsx schedule")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show room sizes in adjacency diagrams")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	formats := parseFormats(opts.formats)
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}

	p, err := planio.ReadPlanFile(input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded %s: %d rooms, %d walls", input, len(p.Rooms), len(p.Walls))

	runner, err := c.newRunner(ctx, runnerOpts{noCache: opts.noCache, catalog: opts.catalog})
	if err != nil {
		return err
	}
	defer runner.Close()

	sw := startStopwatch(c.Logger)
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, p, pipeline.Options{
		Formats:  formats,
		Detailed: opts.detailed,
	})
	if err != nil {
		return err
	}
	sw.lap("Rendered "+strings.Join(formats, ", "), "cached", hit)

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input))
		if len(formats) == 1 {
			output += "." + formats[0]
		}
	}
	paths, err := writeArtifacts(artifacts, formats, output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", StyleHighlight.Render(p.Name))
	printStats(pipeline.Stats{
		Rooms:     len(p.Rooms),
		Walls:     len(p.Walls),
		Doors:     len(p.Doors),
		Windows:   len(p.Windows),
		Furniture: len(p.Furniture),
	}, hit)
	for _, path := range paths {
		printFile(path)
	}
	return nil
}
