package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	accountPostgre "metaads-srv/internal/account/repository/postgre"
	insightsAMQP "metaads-srv/internal/insights/delivery/amqp"
	insightsHTTP "metaads-srv/internal/insights/delivery/http"
	insightsProducer "metaads-srv/internal/insights/delivery/kafka/producer"
	insightsPostgre "metaads-srv/internal/insights/repository/postgre"
	insightsRedis "metaads-srv/internal/insights/repository/redis"
	insightsUsecase "metaads-srv/internal/insights/usecase"
	"metaads-srv/internal/middleware"
	pkgHTTP "metaads-srv/pkg/http"
	"metaads-srv/pkg/metaads"
)

func (srv *HTTPServer) setupInsightsDomain(r *gin.RouterGroup, mw middleware.Middleware) {
	accountRepo := accountPostgre.New(srv.postgresDB, srv.l)
	repo := insightsPostgre.New(srv.postgresDB, srv.l)
	cache := insightsRedis.New(srv.redisClient, srv.l)

	graph := metaads.New(metaads.Config{
		APIVersion:  srv.config.MetaAPI.Version,
		AccessToken: srv.config.MetaAPI.AccessToken,
		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout:       time.Duration(srv.config.MetaAPI.Timeout) * time.Second,
			Retries:       srv.config.Retry.Total,
			BackoffFactor: time.Duration(srv.config.Retry.BackoffFactor * float64(time.Second)),
			RetryStatuses: srv.config.Retry.StatusForcelist,
		}),
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

	handler := insightsHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)
}
