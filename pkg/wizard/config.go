package wizard

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plansmith/pkg/core/geom"
	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/core/walls"
	"github.com/matzehuels/plansmith/pkg/errors"
	"github.com/matzehuels/plansmith/pkg/palette"
)

// Input ranges.
const (
	MinRooms = 1
	MaxRooms = 10

	MinTotalSize = 10.0
	MaxTotalSize = 500.0

	MinWallThickness = 0.05
	MaxWallThickness = 0.5
	MinWallHeight    = 2.0
	MaxWallHeight    = 5.0
)

// Config holds the high-level parameters a plan is generated from.
type Config struct {
	Name        string            `json:"name,omitempty" toml:"name"`
	ProjectType plan.BuildingType `json:"project_type" toml:"project_type"`
	RoomCount   int               `json:"room_count" toml:"room_count"`
	TotalSize   float64           `json:"total_size" toml:"total_size"`
	Style       string            `json:"style" toml:"style"`
	Budget      plan.BudgetTier   `json:"budget" toml:"budget"`

	// Zero means the walls package default.
	WallThickness float64 `json:"wall_thickness,omitempty" toml:"wall_thickness"`
	WallHeight    float64 `json:"wall_height,omitempty" toml:"wall_height"`
}

// DefaultConfig returns a four-room medium-budget house of 100 m².
func DefaultConfig() Config {
	return Config{
		ProjectType: plan.House,
		RoomCount:   4,
		TotalSize:   100,
		Style:       palette.DefaultStyle,
		Budget:      plan.Medium,
	}
}

// Validate rejects configs outside the documented ranges. Errors carry
// CONFIG_OUT_OF_RANGE, INVALID_PROJECT_TYPE, INVALID_BUDGET or
// INVALID_STYLE codes. An empty style is allowed and means the default.
func (c Config) Validate() error {
	if !c.ProjectType.Valid() {
		return errors.New(errors.ErrCodeInvalidProjectType, "unknown project type %q", c.ProjectType).WithField("project_type")
	}
	if !c.Budget.Valid() {
		return errors.New(errors.ErrCodeInvalidBudget, "unknown budget %q", c.Budget).WithField("budget")
	}
	if c.RoomCount < MinRooms || c.RoomCount > MaxRooms {
		return errors.OutOfRange("room_count", c.RoomCount, MinRooms, MaxRooms, "")
	}
	if math.IsNaN(c.TotalSize) || c.TotalSize < MinTotalSize || c.TotalSize > MaxTotalSize {
		return errors.OutOfRange("total_size", c.TotalSize, MinTotalSize, MaxTotalSize, "m²")
	}
	if c.WallThickness != 0 && !inRange(c.WallThickness, MinWallThickness, MaxWallThickness) {
		return errors.OutOfRange("wall_thickness", c.WallThickness, MinWallThickness, MaxWallThickness, "m")
	}
	if c.WallHeight != 0 && !inRange(c.WallHeight, MinWallHeight, MaxWallHeight) {
		return errors.OutOfRange("wall_height", c.WallHeight, MinWallHeight, MaxWallHeight, "m")
	}
	if c.Style != "" {
		if err := errors.ValidateStyleID(c.Style); err != nil {
			return err
		}
	}
	return errors.ValidatePlanName(c.Name)
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// Clamp returns c with every field forced into range. Unknown enums fall
// back to the defaults. The result always passes Validate unless Name or
// Style is malformed.
func (c Config) Clamp() Config {
	def := DefaultConfig()
	if !c.ProjectType.Valid() {
		c.ProjectType = def.ProjectType
	}
	if !c.Budget.Valid() {
		c.Budget = def.Budget
	}
	c.RoomCount = min(max(c.RoomCount, MinRooms), MaxRooms)
	if math.IsNaN(c.TotalSize) {
		c.TotalSize = def.TotalSize
	}
	c.TotalSize = geom.Clamp(c.TotalSize, MinTotalSize, MaxTotalSize)
	if c.WallThickness != 0 {
		c.WallThickness = geom.Clamp(c.WallThickness, MinWallThickness, MaxWallThickness)
	}
	if c.WallHeight != 0 {
		c.WallHeight = geom.Clamp(c.WallHeight, MinWallHeight, MaxWallHeight)
	}
	return c
}

// Normalize fills defaults for optional fields. Two configs that generate
// the same plan normalize to the same value.
func (c Config) Normalize() Config {
	if c.Style == "" {
		c.Style = palette.DefaultStyle
	}
	if c.WallThickness == 0 {
		c.WallThickness = walls.DefaultThickness
	}
	if c.WallHeight == 0 {
		c.WallHeight = walls.DefaultHeight
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("Smart %s Layout", c.ProjectType.Label())
	}
	return c
}

// Key returns a canonical encoding of the normalized config, suitable as
// a cache key or id seed.
func (c Config) Key() []byte {
	data, _ := json.Marshal(c.Normalize())
	return data
}

// =============================================================================
// TOML Loading
// =============================================================================

// DecodeConfig reads a TOML config from r. Fields absent from the input
// keep the values of base.
func DecodeConfig(r io.Reader, base Config) (Config, error) {
	cfg := base
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config")
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file over [DefaultConfig].
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeConfig(f, DefaultConfig())
}
