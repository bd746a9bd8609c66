package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sizePresets are the total areas offered by the wizard, in m².
var sizePresets = []float64{30, 50, 70, 100, 140, 200, 300, 500}

// =============================================================================
// WizardModel - Interactive plan configuration
// =============================================================================

// wizardStep is one page of the wizard.
type wizardStep int

const (
	stepProjectType wizardStep = iota
	stepRooms
	stepSize
	stepStyle
	stepBudget
	stepConfirm
)

// choice is one selectable option of a step.
type choice struct {
	label string
	hint  string
	apply func(*wizard.Config)
}

// WizardModel is the bubbletea model that walks through the generation
// parameters one step at a time.
type WizardModel struct {
	Config wizard.Config
	Step   wizardStep
	Cursor int

	// Done is set when the user confirms; Cancelled when they quit.
	Done      bool
	Cancelled bool

	styles []string
	// cursors remembers the selection of each step when going back.
	cursors map[wizardStep]int
}

// NewWizardModel creates a wizard starting from cfg and offering the given
// style ids.
func NewWizardModel(cfg wizard.Config, styles []string) WizardModel {
	m := WizardModel{
		Config:  cfg,
		styles:  styles,
		cursors: make(map[wizardStep]int),
	}
	m.Cursor = m.initialCursor(stepProjectType)
	return m
}

func (m WizardModel) Init() tea.Cmd {
	return nil
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.choices())-1 {
			m.Cursor++
		}
	case "left", "h", "backspace":
		if m.Step > stepProjectType {
			m.cursors[m.Step] = m.Cursor
			m.Step--
			m.Cursor = m.cursors[m.Step]
		}
	case "enter", "right", "l":
		if m.Step == stepConfirm {
			if key.String() != "enter" {
				return m, nil
			}
			m.Done = true
			return m, tea.Quit
		}
		if cs := m.choices(); len(cs) > 0 {
			cs[m.Cursor].apply(&m.Config)
		}
		m.cursors[m.Step] = m.Cursor
		m.Step++
		if c, ok := m.cursors[m.Step]; ok {
			m.Cursor = c
		} else {
			m.Cursor = m.initialCursor(m.Step)
		}
	}
	return m, nil
}

// initialCursor points at the option matching the current config.
func (m WizardModel) initialCursor(step wizardStep) int {
	switch step {
	case stepProjectType:
		for i, bt := range plan.BuildingTypes {
			if bt == m.Config.ProjectType {
				return i
			}
		}
	case stepRooms:
		return clampIndex(m.Config.RoomCount-wizard.MinRooms, wizard.MaxRooms-wizard.MinRooms+1)
	case stepSize:
		for i, s := range sizePresets {
			if s >= m.Config.TotalSize {
				return i
			}
		}
		return len(sizePresets) - 1
	case stepStyle:
		for i, s := range m.styles {
			if s == m.Config.Style {
				return i
			}
		}
	case stepBudget:
		for i, t := range plan.BudgetTiers {
			if t == m.Config.Budget {
				return i
			}
		}
	}
	return 0
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// choices lists the options of the current step.
func (m WizardModel) choices() []choice {
	var out []choice
	switch m.Step {
	case stepProjectType:
		for _, bt := range plan.BuildingTypes {
			bt := bt
			out = append(out, choice{
				label: bt.Label(),
				apply: func(c *wizard.Config) { c.ProjectType = bt },
			})
		}
	case stepRooms:
		for n := wizard.MinRooms; n <= wizard.MaxRooms; n++ {
			n := n
			out = append(out, choice{
				label: strconv.Itoa(n),
				apply: func(c *wizard.Config) { c.RoomCount = n },
			})
		}
	case stepSize:
		for _, s := range sizePresets {
			s := s
			out = append(out, choice{
				label: fmt.Sprintf("%g m²", s),
				hint:  fmt.Sprintf("~%.0f m² per room", s/float64(m.Config.RoomCount)),
				apply: func(c *wizard.Config) { c.TotalSize = s },
			})
		}
	case stepStyle:
		for _, s := range m.styles {
			s := s
			out = append(out, choice{
				label: s,
				apply: func(c *wizard.Config) { c.Style = s },
			})
		}
	case stepBudget:
		for _, t := range plan.BudgetTiers {
			t := t
			out = append(out, choice{
				label: string(t),
				apply: func(c *wizard.Config) { c.Budget = t },
			})
		}
	}
	return out
}

var stepTitles = map[wizardStep]string{
	stepProjectType: "Project Type",
	stepRooms:       "Number of Rooms",
	stepSize:        "Total Size",
	stepStyle:       "Style",
	stepBudget:      "Budget",
	stepConfirm:     "Confirm",
}

func (m WizardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s (%d/%d)", stepTitles[m.Step], int(m.Step)+1, int(stepConfirm)+1)))
	b.WriteString("\n")
	if m.Step == stepConfirm {
		b.WriteString(listDimStyle.Render("⏎ generate  ← back  q quit"))
		b.WriteString("\n\n")
		b.WriteString(configTable(m.Config))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ next  ← back  q quit"))
	b.WriteString("\n\n")

	for i, c := range m.choices() {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + c.label
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		if c.hint != "" {
			b.WriteString("  " + listDimStyle.Render(c.hint))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Tables
// =============================================================================

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// newTable returns a rounded table in the CLI's colors. Numeric columns
// are right-aligned.
func newTable(headers []string, rows [][]string, numeric ...int) *table.Table {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle.Padding(0, 1)
			}
			s := lipgloss.NewStyle().Padding(0, 1)
			if right[col] {
				s = s.Align(lipgloss.Right).Foreground(colorCyan)
			}
			return s
		})
}

// configTable summarizes a config as a two-column table.
func configTable(cfg wizard.Config) string {
	cfg = cfg.Normalize()
	rows := [][]string{
		{"Name", cfg.Name},
		{"Project", cfg.ProjectType.Label()},
		{"Rooms", strconv.Itoa(cfg.RoomCount)},
		{"Size", fmt.Sprintf("%g m²", cfg.TotalSize)},
		{"Style", cfg.Style},
		{"Budget", string(cfg.Budget)},
		{"Walls", fmt.Sprintf("%g m thick, %g m high", cfg.WallThickness, cfg.WallHeight)},
	}
	return newTable([]string{"Setting", "Value"}, rows).Render()
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
