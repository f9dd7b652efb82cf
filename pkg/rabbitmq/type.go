package rabbitmq

import (
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Config holds RabbitMQ connection configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	VHost    string
}

// Delivery is one consumed message. Ack or Nack must be called exactly once.
type Delivery struct {
	Body []byte

	raw amqp.Delivery
}

// Ack acknowledges the message.
func (d *Delivery) Ack() error {
	return d.raw.Ack(false)
}

// Nack rejects the message. requeue controls redelivery.
func (d *Delivery) Nack(requeue bool) error {
	return d.raw.Nack(false, requeue)
}

// rabbitImpl implements IRabbitMQ.
type rabbitImpl struct {
	mu   sync.Mutex
	url  string
	conn *amqp.Connection
	ch   *amqp.Channel
}
