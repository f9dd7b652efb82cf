package worker

import (
	"fmt"
)

// New creates a new worker server with dependency validation.
func New(cfg Config) (*Server, error) {
	srv := &Server{
		l:             cfg.Logger,
		config:        cfg.Config,
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		rabbitClient:  cfg.RabbitClient,
		kafkaProducer: cfg.KafkaProducer,
		minioClient:   cfg.MinIOClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *Server) validate() error {
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.rabbitClient == nil {
		return fmt.Errorf("rabbitmq client is required")
	}
	if srv.kafkaProducer == nil {
		return fmt.Errorf("kafka producer is required")
	}
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}
	return nil
}
