package amqp

import (
	"context"
	"encoding/json"
	"errors"

	"metaads-srv/internal/insights"
	"metaads-srv/pkg/log"
	"metaads-srv/pkg/rabbitmq"
)

// Consumer drains the sync job queue and drives the insights usecase.
type Consumer struct {
	l      log.Logger
	uc     insights.UseCase
	rabbit rabbitmq.IRabbitMQ
	queue  string
}

func NewConsumer(l log.Logger, uc insights.UseCase, rabbit rabbitmq.IRabbitMQ, queue string) *Consumer {
	if queue == "" {
		queue = QueueSyncJobs
	}
	return &Consumer{
		l:      l,
		uc:     uc,
		rabbit: rabbit,
		queue:  queue,
	}
}

// Run consumes jobs until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	return c.rabbit.Consume(ctx, c.queue, c.handle)
}

// handle processes one delivery. Poison payloads and terminal usecase
// outcomes are dropped; transient failures are requeued.
func (c *Consumer) handle(ctx context.Context, d *rabbitmq.Delivery) {
	var msg SyncJobMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.l.Errorf(ctx, "insights.delivery.amqp.handle: Undecodable job payload, dropping: %v", err)
		d.Nack(false)
		return
	}
	if msg.RunID == "" {
		c.l.Errorf(ctx, "insights.delivery.amqp.handle: Job without run_id, dropping")
		d.Nack(false)
		return
	}

	err := c.uc.ExecuteSync(ctx, insights.ExecuteSyncInput{RunID: msg.RunID})
	if err == nil {
		d.Ack()
		return
	}

	if isTerminal(err) {
		// The run is already recorded as FAILED or was never runnable.
		// Requeueing would only repeat the outcome.
		c.l.Warnf(ctx, "insights.delivery.amqp.handle: Run %s not retryable: %v", msg.RunID, err)
		d.Nack(false)
		return
	}

	c.l.Errorf(ctx, "insights.delivery.amqp.handle: Run %s failed transiently, requeueing: %v", msg.RunID, err)
	d.Nack(true)
}

// isTerminal reports whether retrying the job cannot change the result.
func isTerminal(err error) bool {
	return errors.Is(err, insights.ErrRunNotFound) ||
		errors.Is(err, insights.ErrRunNotQueued) ||
		errors.Is(err, insights.ErrSliceNotEmpty)
}
