package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/planio"
	"github.com/matzehuels/plansmith/pkg/store"
)

// historyCommand creates the history command for saved plans.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, show and delete saved plans",
		Long: `Manage plans saved with --save. Plans live in a SQLite database under
~/.local/share/plansmith (override with PLANSMITH_DB), or in MongoDB when
PLANSMITH_MONGO_URI is set.`,
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyShowCommand())
	cmd.AddCommand(c.historyExportCommand())
	cmd.AddCommand(c.historyDeleteCommand())

	return cmd
}

// withStore opens the plan store for the duration of fn.
func withStore(ctx context.Context, fn func(store.Store) error) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func (c *CLI) historyListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved plans, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(st store.Store) error {
				summaries, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(summaries) == 0 {
					printInfo("No saved plans")
					printNextStep("Save one with", "plansmith generate --save")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), historyTable(summaries, time.Now()))
				return nil
			})
		},
	}
}

// historyTable formats summaries as a table with relative timestamps.
func historyTable(summaries []store.Summary, now time.Time) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.ID, s.Name, strconv.Itoa(s.Rooms),
			fmt.Sprintf("%.1f", s.Area),
			formatRelativeTime(s.CreatedAt, now),
		})
	}
	return newTable([]string{"ID", "Name", "Rooms", "Area (m²)", "Saved"}, rows, 2, 3).Render()
}

func (c *CLI) historyShowCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a saved plan as tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(st store.Store) error {
				p, err := st.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), renderInspect(p, catalog.Default(), all))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also print walls and furniture")
	return cmd
}

func (c *CLI) historyExportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Write a saved plan to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(st store.Store) error {
				p, err := st.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				path := output
				if path == "" {
					path = p.ID + ".json"
				}
				if err := planio.WritePlanFile(p, path); err != nil {
					return err
				}
				printSuccess("Exported %s", StyleHighlight.Render(p.Name))
				printFile(path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <id>.json)")
	return cmd
}

func (c *CLI) historyDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id...]",
		Aliases: []string{"rm"},
		Short:   "Delete saved plans",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(st store.Store) error {
				for _, id := range args {
					if err := st.Delete(cmd.Context(), id); err != nil {
						return err
					}
					printSuccess("Deleted %s", id)
				}
				return nil
			})
		},
	}
}
