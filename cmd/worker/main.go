package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"metaads-srv/config"
	configKafka "metaads-srv/config/kafka"
	configMinio "metaads-srv/config/minio"
	configPostgre "metaads-srv/config/postgre"
	configRabbit "metaads-srv/config/rabbitmq"
	configRedis "metaads-srv/config/redis"
	"metaads-srv/internal/worker"
	"metaads-srv/pkg/log"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.LogFile,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize RabbitMQ
	rabbitClient, err := configRabbit.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer configRabbit.Disconnect()
	logger.Infof(ctx, "RabbitMQ connected successfully to %s:%d", cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)

	// 6. Initialize Kafka producer
	kafkaProducer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return
	}
	defer configKafka.Disconnect()
	logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)

	// 7. Initialize MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 8. Initialize worker server
	srv, err := worker.New(worker.Config{
		Logger: logger,
		Config: cfg,

		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		RabbitClient:  rabbitClient,
		KafkaProducer: kafkaProducer,
		MinIOClient:   minioClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create worker: ", err)
		return
	}

	// 9. Stop on SIGINT/SIGTERM
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		logger.Infof(ctx, "Received signal %v, shutting down gracefully", sig)
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Worker stopped with error: ", err)
	}
}
