package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	abortHeader = failStyle.Render("Import aborted: target gateway unreachable")
)

// SummaryData feeds the final batch summary.
type SummaryData struct {
	Total        int
	Imported     int
	Skipped      int
	Failed       int
	FailedTitles []string
	Finished     bool
	Cancelled    bool
	Aborted      bool
}

// Summary renders the end-of-run report.
type Summary struct {
	data SummaryData
}

// NewSummary creates a summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary. Empty until the run has finished.
func (s Summary) View() string {
	if !s.data.Finished && !s.data.Cancelled && !s.data.Aborted {
		return ""
	}

	var lines []string

	switch {
	case s.data.Aborted:
		lines = append(lines, abortHeader)
	case s.data.Cancelled:
		lines = append(lines, failStyle.Render("Cancelled"))
	case s.data.Failed > 0:
		lines = append(lines, failStyle.Render("Completed with failures"))
	default:
		lines = append(lines, okStyle.Render("Completed"))
	}

	lines = append(lines, fmt.Sprintf("%d imported, %d skipped, %d failed (of %d)",
		s.data.Imported, s.data.Skipped, s.data.Failed, s.data.Total))

	if len(s.data.FailedTitles) > 0 {
		lines = append(lines, mutedStyle.Render("failed: "+strings.Join(s.data.FailedTitles, ", ")))
	}

	return strings.Join(lines, "\n")
}
