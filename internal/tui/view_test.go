package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gatewayops/gwshift/internal/model"
)

func TestViewRendersUnitsAndSummary(t *testing.T) {
	t.Parallel()

	m := NewModel("export.json", []string{"svc-a", "svc-b", "svc-c"}, true)

	updated, _ := m.Update(UnitCompleteMsg{Result: model.UnitResult{Title: "svc-a", Status: model.StatusImported, Message: "created"}})
	m = updated.(Model)
	updated, _ = m.Update(UnitCompleteMsg{Result: model.UnitResult{Title: "svc-b", Status: model.StatusSkipped, Message: "already present on target"}})
	m = updated.(Model)
	updated, _ = m.Update(UnitCompleteMsg{Result: model.UnitResult{Title: "svc-c", Status: model.StatusFailed, Message: "rejected (status 400)"}})
	m = updated.(Model)

	view := m.View()
	require.Contains(t, view, "export.json")
	require.Contains(t, view, "svc-a")
	require.Contains(t, view, "created")
	require.Contains(t, view, "already present on target")
	require.Contains(t, view, "1 imported, 1 skipped, 1 failed (of 3)")
	require.Contains(t, view, "failed: svc-c")
}

func TestViewBeforeCompletionHasNoSummary(t *testing.T) {
	t.Parallel()

	m := NewModel("export.json", []string{"svc-a"}, true)
	view := m.View()
	require.Contains(t, view, "Progress")
	require.NotContains(t, view, "Completed")
}

func TestStatusIconCoversAllStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range []string{
		model.StatusImported,
		model.StatusRunning,
		model.StatusFailed,
		model.StatusSkipped,
		model.StatusWouldImport,
		model.StatusPending,
	} {
		require.NotEmpty(t, StatusIcon(status))
	}
}
