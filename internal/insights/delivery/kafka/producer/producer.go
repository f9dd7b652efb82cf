package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"metaads-srv/internal/insights"
	kafkaDelivery "metaads-srv/internal/insights/delivery/kafka"
)

// PublishSyncCompleted publishes a completion event keyed by account.
func (p *implProducer) PublishSyncCompleted(ctx context.Context, event insights.SyncEvent) error {
	return p.publish(ctx, kafkaDelivery.EventTypeSyncCompleted, event)
}

// PublishSyncFailed publishes a failure event keyed by account.
func (p *implProducer) PublishSyncFailed(ctx context.Context, event insights.SyncEvent) error {
	return p.publish(ctx, kafkaDelivery.EventTypeSyncFailed, event)
}

func (p *implProducer) publish(ctx context.Context, eventType string, event insights.SyncEvent) error {
	msg := kafkaDelivery.SyncEventMessage{
		EventType:    eventType,
		RunID:        event.RunID,
		AccountID:    event.AccountID,
		Status:       event.Status,
		RowsLoaded:   event.RowsLoaded,
		PagesFetched: event.PagesFetched,
		ErrorMessage: event.ErrorMessage,
		CompletedAt:  event.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal sync event: %w", err)
	}

	key := []byte(event.AccountID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish sync event: %w", err)
	}

	p.l.Infof(ctx, "Published %s for run %s (account %s)", eventType, event.RunID, event.AccountID)
	return nil
}
