package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gatewayops/gwshift/internal/model"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case UnitStartMsg:
		m.ensureUnit(msg.Title)
		unit := m.units[msg.Title]
		unit.Status = model.StatusRunning
		m.units[msg.Title] = unit
		return m, nil
	case UnitCompleteMsg:
		title := msg.Result.Title
		if title == "" {
			return m, nil
		}
		m.ensureUnit(title)
		existing := m.units[title]
		previouslyCompleted := existing.Status == model.StatusImported ||
			existing.Status == model.StatusSkipped ||
			existing.Status == model.StatusFailed ||
			existing.Status == model.StatusWouldImport
		m.units[title] = msg.Result
		if !previouslyCompleted {
			m.completed++
			m.markFinishedIfComplete()
		}
		return m, nil
	case AbortMsg:
		m.aborted = true
		m.finished = true
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, nil
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}
