package model

import "time"

// Sync run statuses.
const (
	SyncStatusQueued    = "QUEUED"
	SyncStatusRunning   = "RUNNING"
	SyncStatusCompleted = "COMPLETED"
	SyncStatusFailed    = "FAILED"
)

// Load conflict modes for the warehouse slice targeted by a run.
const (
	LoadModeReplace = "replace"
	LoadModeAppend  = "append"
	LoadModeFail    = "fail"
)

// SyncRun is one insight sync job, from enqueue to completion.
type SyncRun struct {
	ID        string
	AccountID string

	// Request parameters
	Since  string // YYYY-MM-DD
	Until  string // YYYY-MM-DD
	Fields []string
	Mode   string // replace | append | fail

	// Status
	Status       string // QUEUED | RUNNING | COMPLETED | FAILED
	ErrorMessage string

	// Results
	RowsLoaded    int
	PagesFetched  int
	DurationMs    int64
	ArchivePrefix string

	// Timestamps
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
