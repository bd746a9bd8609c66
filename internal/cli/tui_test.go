package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	"github.com/matzehuels/plansmith/pkg/wizard"
)

func press(m WizardModel, keys ...tea.KeyType) (WizardModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(tea.KeyMsg{Type: k})
		m = next.(WizardModel)
	}
	return m, cmd
}

func TestWizardModelWalkthrough(t *testing.T) {
	m := NewWizardModel(wizard.DefaultConfig(), []string{"classic", "modern"})
	if m.Step != stepProjectType || m.Cursor != 0 {
		t.Fatalf("start = step %d cursor %d", m.Step, m.Cursor)
	}

	m, _ = press(m, tea.KeyDown, tea.KeyEnter) // apartment
	if m.Config.ProjectType != plan.Apartment || m.Step != stepRooms {
		t.Fatalf("after type: %+v step %d", m.Config, m.Step)
	}
	if m.Cursor != 3 {
		t.Errorf("rooms cursor = %d, want 3 (4 rooms)", m.Cursor)
	}

	m, _ = press(m, tea.KeyUp, tea.KeyEnter) // 3 rooms
	if m.Config.RoomCount != 3 {
		t.Errorf("rooms = %d, want 3", m.Config.RoomCount)
	}

	m, _ = press(m, tea.KeyUp, tea.KeyEnter) // 70 m²
	if m.Config.TotalSize != 70 {
		t.Errorf("size = %v, want 70", m.Config.TotalSize)
	}

	if m.Cursor != 1 {
		t.Errorf("style cursor = %d, want 1 (modern)", m.Cursor)
	}
	m, _ = press(m, tea.KeyUp, tea.KeyEnter) // classic
	m, _ = press(m, tea.KeyDown, tea.KeyEnter) // premium
	if m.Config.Style != "classic" || m.Config.Budget != plan.Premium {
		t.Errorf("style/budget = %q/%q", m.Config.Style, m.Config.Budget)
	}
	if m.Step != stepConfirm {
		t.Fatalf("step = %d, want confirm", m.Step)
	}
	if !strings.Contains(m.View(), "Apartment") {
		t.Error("confirm view should summarize the project type")
	}

	m, cmd := press(m, tea.KeyEnter)
	if !m.Done || m.Cancelled {
		t.Error("enter on confirm should finish the wizard")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if err := m.Config.Validate(); err != nil {
		t.Errorf("wizard produced invalid config: %v", err)
	}
}

func TestWizardModelBackRestoresCursor(t *testing.T) {
	m := NewWizardModel(wizard.DefaultConfig(), []string{"modern"})
	m, _ = press(m, tea.KeyDown, tea.KeyDown, tea.KeyEnter) // commercial
	m, _ = press(m, tea.KeyLeft)
	if m.Step != stepProjectType || m.Cursor != 2 {
		t.Errorf("after back: step %d cursor %d, want 0/2", m.Step, m.Cursor)
	}
	m, _ = press(m, tea.KeyLeft)
	if m.Step != stepProjectType {
		t.Error("back on first step should stay")
	}
}

func TestWizardModelCursorBounds(t *testing.T) {
	m := NewWizardModel(wizard.DefaultConfig(), []string{"modern"})
	m, _ = press(m, tea.KeyUp, tea.KeyUp)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
	for i := 0; i < 10; i++ {
		m, _ = press(m, tea.KeyDown)
	}
	if m.Cursor != len(plan.BuildingTypes)-1 {
		t.Errorf("cursor = %d, want %d", m.Cursor, len(plan.BuildingTypes)-1)
	}
}

func TestWizardModelCancel(t *testing.T) {
	m := NewWizardModel(wizard.DefaultConfig(), []string{"modern"})
	m, cmd := press(m, tea.KeyEsc)
	if !m.Cancelled || m.Done {
		t.Error("esc should cancel")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestWizardModelIgnoresOtherMessages(t *testing.T) {
	m := NewWizardModel(wizard.DefaultConfig(), []string{"modern"})
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil || next.(WizardModel).Step != stepProjectType {
		t.Error("window size should not change the wizard")
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{30 * 24 * time.Hour, "Apr 10, 2024"},
	}
	for _, tt := range tests {
		if got := formatRelativeTime(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("formatRelativeTime(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}
