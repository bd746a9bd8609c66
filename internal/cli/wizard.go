package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plansmith/pkg/palette"
)

// wizardCommand creates the interactive wizard command. Flags set the
// starting values; the chosen config is generated like `generate` would.
func (c *CLI) wizardCommand() *cobra.Command {
	var opts generateOpts
	cf := newConfigFlags()

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Pick plan parameters interactively, then generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.config(cmd)
			if err != nil {
				return err
			}
			if cf.clamp {
				cfg = cfg.Clamp()
			}

			styles := palette.Default()
			if opts.palettes != "" {
				if styles, err = palette.LoadFile(opts.palettes); err != nil {
					return err
				}
			}

			final, err := tea.NewProgram(NewWizardModel(cfg, styles.Styles()), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			fm, ok := final.(WizardModel)
			if !ok || !fm.Done {
				printDetail("Wizard cancelled")
				return nil
			}
			printNewline()
			return c.runGenerate(cmd.Context(), fm.Config, false, opts)
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): json (default), dot, svg, xlsx (comma-separated)")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "TOML file adding or replacing furniture catalog items")
	cmd.Flags().StringVar(&opts.palettes, "palettes", "", "TOML file adding or replacing style palettes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show room sizes in adjacency diagrams")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the plan to the local history")

	return cmd
}
