package model

import (
	"fmt"
	"strings"
)

// BatchResult aggregates per-unit outcomes for one pipeline run. Results
// holds every attempted unit in attempt order; units left unattempted after
// a fatal abort are not counted.
type BatchResult struct {
	Total    int
	Imported int
	Skipped  int
	Failed   int
	Results  []UnitResult
	Aborted  bool
}

// Record appends a unit outcome and updates the counters.
func (b *BatchResult) Record(res UnitResult) {
	b.Results = append(b.Results, res)
	b.Total++
	switch res.Status {
	case StatusImported, StatusWouldImport:
		b.Imported++
	case StatusSkipped:
		b.Skipped++
	case StatusFailed:
		b.Failed++
	}
}

// FailedTitles returns the identifiers of all failed units in attempt order.
func (b *BatchResult) FailedTitles() []string {
	var titles []string
	for _, res := range b.Results {
		if res.Status == StatusFailed {
			titles = append(titles, res.Title)
		}
	}
	return titles
}

// OK reports whether the batch completed without a fatal abort and with
// zero failed units.
func (b *BatchResult) OK() bool {
	return !b.Aborted && b.Failed == 0
}

// Summary renders a one-line human summary of the batch.
func (b *BatchResult) Summary() string {
	line := fmt.Sprintf("%d imported, %d skipped, %d failed (of %d)", b.Imported, b.Skipped, b.Failed, b.Total)
	if b.Aborted {
		line += " — aborted"
	}
	if failed := b.FailedTitles(); len(failed) > 0 {
		line += ": " + strings.Join(failed, ", ")
	}
	return line
}
