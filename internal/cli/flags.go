package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

// configFlags binds wizard.Config fields to command-line flags. Flags the
// user sets explicitly override values from --config.
type configFlags struct {
	path          string
	name          string
	projectType   string
	rooms         int
	size          float64
	style         string
	budget        string
	wallThickness float64
	wallHeight    float64
	clamp         bool
}

func newConfigFlags() *configFlags {
	def := wizard.DefaultConfig()
	return &configFlags{
		projectType: string(def.ProjectType),
		rooms:       def.RoomCount,
		size:        def.TotalSize,
		style:       def.Style,
		budget:      string(def.Budget),
	}
}

func (f *configFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.path, "config", "c", "", "TOML config file (flags override its values)")
	fs.StringVar(&f.name, "name", "", "plan name (default \"Smart <Type> Layout\")")
	fs.StringVarP(&f.projectType, "type", "t", f.projectType, "project type: "+joinEnum(plan.BuildingTypes))
	fs.IntVarP(&f.rooms, "rooms", "r", f.rooms, fmt.Sprintf("room count (%d-%d)", wizard.MinRooms, wizard.MaxRooms))
	fs.Float64VarP(&f.size, "size", "s", f.size, fmt.Sprintf("total area in m² (%g-%g)", wizard.MinTotalSize, wizard.MaxTotalSize))
	fs.StringVar(&f.style, "style", f.style, "style id (see `plansmith inspect --styles`)")
	fs.StringVarP(&f.budget, "budget", "b", f.budget, "budget tier: "+joinEnum(plan.BudgetTiers))
	fs.Float64Var(&f.wallThickness, "wall-thickness", 0, "wall thickness in m (default 0.15)")
	fs.Float64Var(&f.wallHeight, "wall-height", 0, "wall height in m (default 2.7)")
	fs.BoolVar(&f.clamp, "clamp", false, "force out-of-range values into range instead of failing")
}

// config builds the config: defaults, then --config, then explicit flags.
func (f *configFlags) config(cmd *cobra.Command) (wizard.Config, error) {
	cfg := wizard.DefaultConfig()
	if f.path != "" {
		loaded, err := wizard.LoadConfig(f.path)
		if err != nil {
			return wizard.Config{}, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("name") {
		cfg.Name = f.name
	}
	if fs.Changed("type") {
		cfg.ProjectType = plan.BuildingType(f.projectType)
	}
	if fs.Changed("rooms") {
		cfg.RoomCount = f.rooms
	}
	if fs.Changed("size") {
		cfg.TotalSize = f.size
	}
	if fs.Changed("style") {
		cfg.Style = f.style
	}
	if fs.Changed("budget") {
		cfg.Budget = plan.BudgetTier(f.budget)
	}
	if fs.Changed("wall-thickness") {
		cfg.WallThickness = f.wallThickness
	}
	if fs.Changed("wall-height") {
		cfg.WallHeight = f.wallHeight
	}
	return cfg, nil
}

func joinEnum[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}
