package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerRetryMax is the number of times to retry a failed publish.
	ProducerRetryMax = 3
	// ProducerTimeout is the maximum time to wait for an ack.
	ProducerTimeout = 10 * time.Second
)

// KafkaVersion is the minimum broker version this service targets.
var KafkaVersion = sarama.V2_6_0_0
