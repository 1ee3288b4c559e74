package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gatewayops/gwshift/internal/model"
	"github.com/gatewayops/gwshift/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("gwshift • %s", m.title))
	sections = append(sections, title)

	progress := components.NewProgress(m.total).View(m.completed)
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	if len(m.order) > 0 {
		sections = append(sections, sectionStyle.Render("Units"))
		sections = append(sections, m.renderUnits())
	}

	summary := components.NewSummary(m.summaryData()).View()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderUnits() string {
	var lines []string
	for _, title := range m.order {
		res := m.units[title]
		icon := StatusIcon(res.Status)
		line := fmt.Sprintf(" %s %s", icon, title)
		if strings.TrimSpace(res.Message) != "" {
			line = fmt.Sprintf("%s — %s", line, res.Message)
		}
		if res.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, res.Duration.Truncate(10*time.Millisecond))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) summaryData() components.SummaryData {
	data := components.SummaryData{
		Total:     m.total,
		Finished:  m.finished,
		Cancelled: m.cancelled,
		Aborted:   m.aborted,
	}

	for _, title := range m.order {
		switch m.units[title].Status {
		case model.StatusImported, model.StatusWouldImport:
			data.Imported++
		case model.StatusSkipped:
			data.Skipped++
		case model.StatusFailed:
			data.Failed++
			data.FailedTitles = append(data.FailedTitles, title)
		}
	}

	return data
}

// StatusIcon returns the glyph representing a unit status.
func StatusIcon(status string) string {
	switch status {
	case model.StatusImported:
		return successStyle.Render("✓")
	case model.StatusRunning:
		return runningStyle.Render("⏳")
	case model.StatusFailed:
		return failureStyle.Render("✗")
	case model.StatusSkipped:
		return skippedStyle.Render("⊘")
	case model.StatusWouldImport:
		return pendingStyle.Render("✱")
	default:
		return pendingStyle.Render("…")
	}
}
