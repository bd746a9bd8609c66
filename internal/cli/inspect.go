package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plansmith/pkg/catalog"
	"github.com/matzehuels/plansmith/pkg/core/furniture"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/walls"
	"github.com/matzehuels/plansmith/pkg/palette"
	"github.com/matzehuels/plansmith/pkg/planio"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	all      bool   // include walls and furniture
	catalog  string // TOML catalog override for furniture names
	styles   bool   // list styles instead of reading a plan
	items    bool   // list catalog items instead of reading a plan
	palettes string
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [plan.json]",
		Short: "Print a plan file as tables",
		Long: `Print the rooms, openings and proportion advisories of a plan file.
With --styles or --items, list the available styles or catalog items instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup := catalog.Default()
			if opts.catalog != "" {
				var err error
				if lookup, err = catalog.LoadFile(opts.catalog); err != nil {
					return err
				}
			}

			switch {
			case opts.styles:
				set := palette.Default()
				if opts.palettes != "" {
					var err error
					if set, err = palette.LoadFile(opts.palettes); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), stylesTable(set))
				return nil
			case opts.items:
				fmt.Fprintln(cmd.OutOrStdout(), catalogTable(lookup))
				return nil
			case len(args) == 0:
				return fmt.Errorf("a plan file is required unless --styles or --items is given")
			}

			p, err := planio.ReadPlanFile(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("loaded plan", "path", args[0], "id", p.ID)
			fmt.Fprint(cmd.OutOrStdout(), renderInspect(p, lookup, opts.all))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "also print walls and furniture")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "TOML catalog override used to name furniture")
	cmd.Flags().StringVar(&opts.palettes, "palettes", "", "TOML palette override listed by --styles")
	cmd.Flags().BoolVar(&opts.styles, "styles", false, "list the available styles")
	cmd.Flags().BoolVar(&opts.items, "items", false, "list the furniture catalog")

	return cmd
}

// renderInspect formats p as a summary followed by one table per section.
func renderInspect(p *plan.Plan, lookup catalog.Lookup, all bool) string {
	var b strings.Builder
	section := func(title, body string) {
		b.WriteString("\n" + StyleTitle.Render(title) + "\n" + body + "\n")
	}

	b.WriteString(StyleTitle.Render(p.Name) + " " + StyleDim.Render(p.ID) + "\n")
	bounds := p.Bounds()
	fmt.Fprintf(&b, "%s\n", StyleDim.Render(fmt.Sprintf("%.1f m² in %d rooms · footprint %.1f × %.1f m · walls %.2f m high",
		p.TotalArea(), len(p.Rooms), bounds.W, bounds.H, p.WallHeight)))

	section("Rooms", roomsTable(p))
	section("Openings", openingsTable(p))
	if all {
		section("Walls", wallsTable(p))
		section("Furniture", furnitureTable(p, lookup))
	}
	if adv := advisories(p); len(adv) > 0 {
		b.WriteString("\n" + StyleTitle.Render("Advisories") + "\n")
		for _, line := range adv {
			b.WriteString(StyleWarning.Render(iconWarning) + " " + line + "\n")
		}
	}
	return b.String()
}

func roomsTable(p *plan.Plan) string {
	rows := make([][]string, 0, len(p.Rooms))
	for _, r := range p.Rooms {
		rows = append(rows, []string{
			r.ID, r.Name, string(r.Type),
			fmt.Sprintf("%.2f, %.2f", r.X, r.Y),
			fmt.Sprintf("%.2f × %.2f", r.Width, r.Depth),
			fmt.Sprintf("%.1f", r.Area),
			r.FloorMaterial,
		})
	}
	return newTable([]string{"ID", "Name", "Type", "Origin", "Size (m)", "Area (m²)", "Floor"}, rows, 5).Render()
}

func openingsTable(p *plan.Plan) string {
	rows := make([][]string, 0, len(p.Doors)+len(p.Windows))
	for _, d := range p.Doors {
		rows = append(rows, []string{d.ID, "door", d.WallID, fmt.Sprintf("%.2f", d.Position), fmt.Sprintf("%.2f", d.Width), "-"})
	}
	for _, w := range p.Windows {
		rows = append(rows, []string{w.ID, "window", w.WallID, fmt.Sprintf("%.2f", w.Position), fmt.Sprintf("%.2f", w.Width), fmt.Sprintf("%.2f", w.SillHeight)})
	}
	return newTable([]string{"ID", "Kind", "Wall", "Position", "Width", "Sill"}, rows, 3, 4, 5).Render()
}

func wallsTable(p *plan.Plan) string {
	cs := walls.Classify(p.Walls, p.PlacedRooms())
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		kind := "exterior"
		if c.Interior() {
			kind = "interior"
		}
		names := make([]string, len(c.Indices))
		for i, idx := range c.Indices {
			names[i] = p.Rooms[idx].Name
		}
		rows = append(rows, []string{
			c.Wall.ID, kind,
			fmt.Sprintf("(%.2f, %.2f) → (%.2f, %.2f)", c.Wall.Start.X, c.Wall.Start.Y, c.Wall.End.X, c.Wall.End.Y),
			fmt.Sprintf("%.2f", c.Wall.Length()),
			strings.Join(names, ", "),
		})
	}
	return newTable([]string{"ID", "Kind", "Segment", "Length", "Rooms"}, rows, 3).Render()
}

func furnitureTable(p *plan.Plan, lookup catalog.Lookup) string {
	rooms := make(map[string]string, len(p.Rooms))
	for _, r := range p.Rooms {
		rooms[r.ID] = r.Name
	}
	rows := make([][]string, 0, len(p.Furniture))
	for _, f := range p.Furniture {
		name := StyleDim.Render("unknown")
		if it, ok := lookup.Item(f.CatalogID); ok {
			name = it.Name
		}
		rows = append(rows, []string{
			f.ID, rooms[f.RoomID], f.CatalogID, name,
			fmt.Sprintf("%.2f, %.2f", f.Position.X, f.Position.Y),
			fmt.Sprintf("%g°", f.Rotation),
		})
	}
	return newTable([]string{"ID", "Room", "Catalog ID", "Name", "Position", "Rotation"}, rows).Render()
}

// advisories re-runs the proportion checks on p's rooms.
func advisories(p *plan.Plan) []string {
	var out []string
	for _, r := range p.Rooms {
		out = append(out, furniture.ValidateProportions(r.Placed().SizedRoom)...)
	}
	return out
}

func stylesTable(set *palette.Set) string {
	var rows [][]string
	for _, id := range set.Styles() {
		pal := set.Resolve(id)
		rows = append(rows, []string{id, pal.WallColor, pal.FloorMaterial, pal.FloorColor})
	}
	return newTable([]string{"Style", "Wall", "Floor", "Floor Color"}, rows).Render()
}

func catalogTable(c *catalog.Catalog) string {
	items := c.Items()
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ID, it.Name, it.Category,
			fmt.Sprintf("%.2f × %.2f × %.2f", it.Width, it.Depth, it.Height),
		})
	}
	return newTable([]string{"ID", "Name", "Category", "W × D × H (m)"}, rows).Render()
}
