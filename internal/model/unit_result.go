package model

import (
	"time"
)

const (
	// StatusPending indicates a unit has not been attempted yet.
	StatusPending = "pending"
	// StatusRunning indicates a unit is being imported.
	StatusRunning = "running"
	// StatusImported marks a unit created on the target gateway.
	StatusImported = "imported"
	// StatusSkipped marks a unit that already exists on the target.
	StatusSkipped = "skipped"
	// StatusFailed marks a unit the target rejected, or a record that
	// failed transformation before import.
	StatusFailed = "failed"
	// StatusWouldImport indicates dry-run would create the unit.
	StatusWouldImport = "would_import"
)

// UnitResult captures the outcome of importing a single unit.
type UnitResult struct {
	Title     string
	Status    string
	Message   string
	Error     error
	Duration  time.Duration
	Timestamp time.Time
}
