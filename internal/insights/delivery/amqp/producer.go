package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"metaads-srv/internal/insights"
	"metaads-srv/pkg/log"
	"metaads-srv/pkg/rabbitmq"
)

type implJobQueue struct {
	l      log.Logger
	rabbit rabbitmq.IRabbitMQ
	queue  string
}

// NewJobQueue creates the queue-backed job publisher. An empty queue name
// falls back to QueueSyncJobs.
func NewJobQueue(l log.Logger, rabbit rabbitmq.IRabbitMQ, queue string) insights.JobQueue {
	if queue == "" {
		queue = QueueSyncJobs
	}
	return &implJobQueue{
		l:      l,
		rabbit: rabbit,
		queue:  queue,
	}
}

// EnqueueSyncJob publishes one sync job to the worker queue.
func (q *implJobQueue) EnqueueSyncJob(ctx context.Context, job insights.SyncJob) error {
	msg := SyncJobMessage{
		RunID:      job.RunID,
		AccountID:  job.AccountID,
		EnqueuedAt: job.EnqueuedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal sync job: %w", err)
	}

	if err := q.rabbit.Publish(ctx, q.queue, body); err != nil {
		return fmt.Errorf("failed to publish sync job: %w", err)
	}

	q.l.Infof(ctx, "Enqueued sync job for run %s (account %s)", job.RunID, job.AccountID)
	return nil
}
