package kafka

import "github.com/IBM/sarama"

// Config holds configuration for the Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

// producerImpl implements IProducer using a sarama sync producer.
type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}
