package amqp

import "time"

// QueueSyncJobs is the durable queue carrying sync jobs to the worker.
const QueueSyncJobs = "metaads.sync.jobs"

// SyncJobMessage is the wire format of one queued sync job.
type SyncJobMessage struct {
	RunID      string    `json:"run_id"`
	AccountID  string    `json:"account_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
