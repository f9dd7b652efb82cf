package rabbitmq

import "time"

const (
	// DefaultConnectTimeout is the maximum time to wait for the initial dial.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultPrefetchCount limits unacked deliveries per consumer.
	DefaultPrefetchCount = 1
	// ReconnectDelay is the wait between reconnect attempts.
	ReconnectDelay = 2 * time.Second
)
