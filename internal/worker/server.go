package worker

import (
	"context"
	"database/sql"
	"time"

	"metaads-srv/config"
	accountPostgre "metaads-srv/internal/account/repository/postgre"
	insightsAMQP "metaads-srv/internal/insights/delivery/amqp"
	insightsProducer "metaads-srv/internal/insights/delivery/kafka/producer"
	insightsPostgre "metaads-srv/internal/insights/repository/postgre"
	insightsRedis "metaads-srv/internal/insights/repository/redis"
	insightsUsecase "metaads-srv/internal/insights/usecase"
	pkgHTTP "metaads-srv/pkg/http"
	pkgKafka "metaads-srv/pkg/kafka"
	"metaads-srv/pkg/log"
	"metaads-srv/pkg/metaads"
	"metaads-srv/pkg/minio"
	"metaads-srv/pkg/rabbitmq"
	"metaads-srv/pkg/redis"
)

// Server is the sync worker orchestrator. It owns the job queue consumer
// and the insights execution pipeline.
type Server struct {
	l      log.Logger
	config *config.Config

	postgresDB    *sql.DB
	redisClient   redis.IRedis
	rabbitClient  rabbitmq.IRabbitMQ
	kafkaProducer pkgKafka.IProducer
	minioClient   minio.MinIO
}

// Config holds all dependencies for the worker server.
type Config struct {
	Logger log.Logger
	Config *config.Config

	PostgresDB    *sql.DB
	RedisClient   redis.IRedis
	RabbitClient  rabbitmq.IRabbitMQ
	KafkaProducer pkgKafka.IProducer
	MinIOClient   minio.MinIO
}

// Run starts the worker and blocks until ctx is cancelled.
func (srv *Server) Run(ctx context.Context) error {
	if err := srv.minioClient.EnsureBucket(ctx, srv.config.MinIO.Bucket); err != nil {
		srv.l.Errorf(ctx, "Failed to ensure archive bucket: %v", err)
		return err
	}

	consumer := srv.setupInsightsDomain()

	srv.l.Info(ctx, "Worker is running")

	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		srv.l.Errorf(ctx, "Consumer stopped: %v", err)
		return err
	}

	srv.l.Info(ctx, "Worker stopped gracefully")
	return nil
}

// setupInsightsDomain wires repositories, the Graph API client and the
// deliveries into the insights usecase, then hangs a consumer off it.
func (srv *Server) setupInsightsDomain() *insightsAMQP.Consumer {
	accountRepo := accountPostgre.New(srv.postgresDB, srv.l)
	repo := insightsPostgre.New(srv.postgresDB, srv.l)
	cache := insightsRedis.New(srv.redisClient, srv.l)

	graph := metaads.New(metaads.Config{
		APIVersion:  srv.config.MetaAPI.Version,
		AccessToken: srv.config.MetaAPI.AccessToken,
		HTTPClient:  srv.newGraphHTTPClient(),
	})

	jobQueue := insightsAMQP.NewJobQueue(srv.l, srv.rabbitClient, srv.config.RabbitMQ.JobQueue)
	eventProducer := insightsProducer.New(srv.l, srv.kafkaProducer)

	uc := insightsUsecase.New(
		srv.l,
		repo,
		cache,
		accountRepo,
		graph,
		srv.minioClient,
		jobQueue,
		eventProducer,
		insightsUsecase.Config{
			ArchiveBucket: srv.config.MinIO.Bucket,
			ChunkSize:     srv.config.Loader.ChunkSize,
			DefaultMode:   srv.config.Loader.IfExists,
			DefaultFields: srv.config.MetaAPI.DefaultFields,
			PageLimit:     srv.config.MetaAPI.PageLimit,
		},
	)

	return insightsAMQP.NewConsumer(srv.l, uc, srv.rabbitClient, srv.config.RabbitMQ.JobQueue)
}

func (srv *Server) newGraphHTTPClient() pkgHTTP.IClient {
	return pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:       time.Duration(srv.config.MetaAPI.Timeout) * time.Second,
		Retries:       srv.config.Retry.Total,
		BackoffFactor: time.Duration(srv.config.Retry.BackoffFactor * float64(time.Second)),
		RetryStatuses: srv.config.Retry.StatusForcelist,
	})
}
