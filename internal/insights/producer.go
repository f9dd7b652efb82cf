package insights

import (
	"context"
	"time"
)

// SyncJob is the unit of work handed to the worker over the job queue.
type SyncJob struct {
	RunID      string
	AccountID  string
	EnqueuedAt time.Time
}

// SyncEvent describes a finished run for downstream consumers.
type SyncEvent struct {
	RunID        string
	AccountID    string
	Status       string
	RowsLoaded   int
	PagesFetched int
	ErrorMessage string
	CompletedAt  time.Time
}

// JobQueue enqueues sync jobs for the worker.
type JobQueue interface {
	EnqueueSyncJob(ctx context.Context, job SyncJob) error
}

// Producer publishes sync lifecycle events.
type Producer interface {
	PublishSyncCompleted(ctx context.Context, event SyncEvent) error
	PublishSyncFailed(ctx context.Context, event SyncEvent) error
}
