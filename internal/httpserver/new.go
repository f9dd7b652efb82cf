package httpserver

import (
	"database/sql"
	"errors"

	"metaads-srv/config"
	pkgJWT "metaads-srv/pkg/jwt"
	pkgKafka "metaads-srv/pkg/kafka"
	"metaads-srv/pkg/log"
	"metaads-srv/pkg/minio"
	"metaads-srv/pkg/rabbitmq"
	pkgRedis "metaads-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	rabbitClient  rabbitmq.IRabbitMQ
	kafkaProducer pkgKafka.IProducer
	minioClient   minio.MinIO

	config     *config.Config
	jwtManager *pkgJWT.Manager
}

type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	RabbitClient  rabbitmq.IRabbitMQ
	KafkaProducer pkgKafka.IProducer
	MinIOClient   minio.MinIO

	Config     *config.Config
	JWTManager *pkgJWT.Manager
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		rabbitClient:  cfg.RabbitClient,
		kafkaProducer: cfg.KafkaProducer,
		minioClient:   cfg.MinIOClient,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.rabbitClient == nil {
		return errors.New("rabbitClient is required")
	}
	if srv.kafkaProducer == nil {
		return errors.New("kafkaProducer is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	return nil
}
