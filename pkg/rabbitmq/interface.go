package rabbitmq

import (
	"context"
	"fmt"
)

// IRabbitMQ defines the interface for queue publish and consume.
// Implementations are safe for concurrent use.
type IRabbitMQ interface {
	// Publish sends a persistent message to a durable queue.
	Publish(ctx context.Context, queue string, body []byte) error
	// Consume delivers messages from a durable queue to handler until ctx is
	// cancelled. The handler owns ack/nack.
	Consume(ctx context.Context, queue string, handler func(ctx context.Context, d *Delivery)) error
	Close() error
	HealthCheck() error
}

// New creates a new RabbitMQ client and opens the connection.
func New(cfg Config) (IRabbitMQ, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.Port <= 0 {
		cfg.Port = 5672
	}
	if cfg.VHost == "" {
		cfg.VHost = "/"
	}

	r := &rabbitImpl{
		url: fmt.Sprintf("amqp://%s:%s@%s:%d%s", cfg.Username, cfg.Password, cfg.Host, cfg.Port, vhostPath(cfg.VHost)),
	}
	if err := r.connect(); err != nil {
		return nil, err
	}
	return r, nil
}

func vhostPath(vhost string) string {
	if vhost == "/" {
		return "/"
	}
	return "/" + vhost
}
