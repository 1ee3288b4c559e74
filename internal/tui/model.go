package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatewayops/gwshift/internal/model"
)

// UnitStartMsg indicates a unit import has started.
type UnitStartMsg struct {
	Title string
	Time  time.Time
}

// UnitCompleteMsg reports that a unit import has finished.
type UnitCompleteMsg struct {
	Result model.UnitResult
}

// AbortMsg reports a batch-fatal failure; remaining units stay unattempted.
type AbortMsg struct {
	Err error
}

type tickMsg struct{}

// Model contains the Bubbletea state for the import progress UI.
type Model struct {
	title          string
	units          map[string]model.UnitResult
	order          []string
	total          int
	completed      int
	finished       bool
	cancelled      bool
	aborted        bool
	nonInteractive bool
}

// NewModel constructs a progress model tracking the given unit titles in
// emission order.
func NewModel(title string, titles []string, nonInteractive bool) Model {
	m := Model{
		title:          title,
		units:          make(map[string]model.UnitResult, len(titles)),
		order:          make([]string, 0, len(titles)),
		nonInteractive: nonInteractive,
	}

	for _, unitTitle := range titles {
		if _, exists := m.units[unitTitle]; !exists {
			m.units[unitTitle] = model.UnitResult{Title: unitTitle, Status: model.StatusPending}
			m.order = append(m.order, unitTitle)
			m.total++
		}
	}

	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// TotalUnits returns the number of units tracked by the model.
func (m Model) TotalUnits() int {
	return m.total
}

// CompletedUnits returns the number of finished units.
func (m Model) CompletedUnits() int {
	return m.completed
}

// IsFinished reports whether the run has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

func (m *Model) ensureUnit(title string) {
	if title == "" {
		return
	}
	if _, exists := m.units[title]; !exists {
		m.units[title] = model.UnitResult{Title: title, Status: model.StatusPending}
		m.order = append(m.order, title)
		m.total++
	}
}

func (m *Model) markFinishedIfComplete() {
	if m.total > 0 && m.completed >= m.total {
		m.finished = true
	}
}
