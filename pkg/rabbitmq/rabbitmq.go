package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (r *rabbitImpl) connect() error {
	conn, err := amqp.DialConfig(r.url, amqp.Config{Dial: amqp.DefaultDial(DefaultConnectTimeout)})
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.Qos(DefaultPrefetchCount, 0, false); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	r.conn = conn
	r.ch = ch
	return nil
}

func (r *rabbitImpl) declareQueue(queue string) error {
	_, err := r.ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return nil
}

// Publish sends a persistent message to a durable queue.
func (r *rabbitImpl) Publish(ctx context.Context, queue string, body []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ch == nil {
		return ErrNotConnected
	}
	if err := r.declareQueue(queue); err != nil {
		return err
	}

	err := r.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", queue, err)
	}
	return nil
}

// Consume delivers messages from a durable queue to handler until ctx is cancelled.
func (r *rabbitImpl) Consume(ctx context.Context, queue string, handler func(ctx context.Context, d *Delivery)) error {
	r.mu.Lock()
	if r.ch == nil {
		r.mu.Unlock()
		return ErrNotConnected
	}
	if err := r.declareQueue(queue); err != nil {
		r.mu.Unlock()
		return err
	}
	deliveries, err := r.ch.Consume(queue, "", false, false, false, false, nil)
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to consume from queue %s: %w", queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel for queue %s closed", queue)
			}
			handler(ctx, &Delivery{Body: d.Body, raw: d})
		}
	}
}

// Close closes the channel and connection.
func (r *rabbitImpl) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ch != nil {
		_ = r.ch.Close()
		r.ch = nil
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			return err
		}
		r.conn = nil
	}
	return nil
}

// HealthCheck verifies the connection is open.
func (r *rabbitImpl) HealthCheck() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() {
		return ErrNotConnected
	}
	return nil
}
