package producer

import (
	"metaads-srv/internal/insights"
	pkgKafka "metaads-srv/pkg/kafka"
	"metaads-srv/pkg/log"
)

// Producer interface for the insights domain.
type Producer interface {
	insights.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new insights event producer.
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
