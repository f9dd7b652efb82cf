package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Meta Graph API - insights source
	MetaAPI MetaAPIConfig
	Retry   RetryConfig

	// Warehouse load policy
	Loader LoaderConfig

	// PostgreSQL - warehouse, account registry, sync runs
	Postgres PostgresConfig

	// Redis - caching, in-flight sync guard
	Redis RedisConfig

	// Kafka - sync lifecycle events
	Kafka KafkaConfig

	// RabbitMQ - sync job queue
	RabbitMQ RabbitMQConfig

	// MinIO - raw payload archive
	MinIO MinIOConfig

	// JWT / internal service authentication
	JWT            JWTConfig
	InternalConfig InternalConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger. Two sinks mirror the
// classic File/Stream handler pair: console is always on, the file sink is
// enabled by a non-empty LogFile.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	LogFile      string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

// MetaAPIConfig is the configuration for the Meta Graph API.
type MetaAPIConfig struct {
	// Version is the Graph API version, e.g. "v20.0". The base URL is always
	// derived from it (https://graph.facebook.com/<version>).
	Version     string
	AccessToken string
	// DefaultFields is the insights field list used when a sync request does
	// not name its own.
	DefaultFields []string
	PageLimit     int
	Timeout       int // in seconds
}

// RetryConfig is the retry policy for Graph API requests.
type RetryConfig struct {
	// Total is the attempt budget, including the first request.
	Total int
	// BackoffFactor is the base delay in seconds; delays grow as
	// factor * 2^(attempt-1).
	BackoffFactor float64
	// StatusForcelist are the HTTP status codes that trigger a retry.
	StatusForcelist []int
}

// LoaderConfig is the bulk-load policy for the warehouse.
type LoaderConfig struct {
	// IfExists is the conflict mode: replace | append | fail.
	IfExists string
	// ChunkSize is the number of rows per insert batch.
	ChunkSize int
}

// PostgresConfig is the configuration for Postgres.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RabbitMQConfig is the configuration for RabbitMQ.
type RabbitMQConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	VHost    string
	JobQueue string
}

// MinIOConfig is the configuration for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// JWTConfig is used to verify service tokens.
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// InternalConfig is the configuration for internal service authentication.
type InternalConfig struct {
	// ServiceKeys maps service name to its shared key for X-Service-Key auth.
	ServiceKeys map[string]string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("metaads-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/metaads/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.LogFile = viper.GetString("logger.log_file")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")

	// Meta Graph API
	cfg.MetaAPI.Version = viper.GetString("meta_api.version")
	cfg.MetaAPI.AccessToken = viper.GetString("meta_api.access_token")
	cfg.MetaAPI.DefaultFields = viper.GetStringSlice("meta_api.default_fields")
	cfg.MetaAPI.PageLimit = viper.GetInt("meta_api.page_limit")
	cfg.MetaAPI.Timeout = viper.GetInt("meta_api.timeout")

	// Retry policy
	cfg.Retry.Total = viper.GetInt("retry.total")
	cfg.Retry.BackoffFactor = viper.GetFloat64("retry.backoff_factor")
	cfg.Retry.StatusForcelist = viper.GetIntSlice("retry.status_forcelist")

	// Loader policy
	cfg.Loader.IfExists = viper.GetString("loader.if_exists")
	cfg.Loader.ChunkSize = viper.GetInt("loader.chunksize")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// RabbitMQ
	cfg.RabbitMQ.Host = viper.GetString("rabbitmq.host")
	cfg.RabbitMQ.Port = viper.GetInt("rabbitmq.port")
	cfg.RabbitMQ.Username = viper.GetString("rabbitmq.username")
	cfg.RabbitMQ.Password = viper.GetString("rabbitmq.password")
	cfg.RabbitMQ.VHost = viper.GetString("rabbitmq.vhost")
	cfg.RabbitMQ.JobQueue = viper.GetString("rabbitmq.job_queue")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Internal service keys
	serviceKeys := make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		for service, key := range viper.GetStringMapString("internal.service_keys") {
			serviceKeys[service] = key
		}
	}
	cfg.InternalConfig.ServiceKeys = serviceKeys

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")

	// Logger: console + file, like the classic Stream/File handler pair
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", false)
	viper.SetDefault("logger.log_file", "meta_ads.log")
	viper.SetDefault("logger.max_size_mb", 100)
	viper.SetDefault("logger.max_backups", 3)
	viper.SetDefault("logger.max_age_days", 28)

	// 1. Meta Graph API
	viper.SetDefault("meta_api.version", "v20.0")
	viper.SetDefault("meta_api.default_fields", []string{
		"spend",
		"cpc",
		"cpm",
		"objective",
		"adset_name",
		"adset_id",
		"clicks",
		"campaign_name",
		"campaign_id",
		"conversions",
		"frequency",
		"conversion_values",
		"ad_name",
		"ad_id",
	})
	viper.SetDefault("meta_api.page_limit", 500)
	viper.SetDefault("meta_api.timeout", 30)

	// 2. Retry policy for Graph API requests
	viper.SetDefault("retry.total", 3)
	viper.SetDefault("retry.backoff_factor", 1.0)
	viper.SetDefault("retry.status_forcelist", []int{500, 502, 503, 504})

	// 3. Warehouse load policy
	viper.SetDefault("loader.if_exists", "replace")
	viper.SetDefault("loader.chunksize", 10000)

	// 4. PostgreSQL (schema: metaads)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "metaads")

	// 5. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 6. Kafka (topic: metaads.sync.events)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "metaads.sync.events")

	// 7. RabbitMQ (queue: metaads.sync.jobs)
	viper.SetDefault("rabbitmq.host", "localhost")
	viper.SetDefault("rabbitmq.port", 5672)
	viper.SetDefault("rabbitmq.username", "guest")
	viper.SetDefault("rabbitmq.password", "guest")
	viper.SetDefault("rabbitmq.vhost", "/")
	viper.SetDefault("rabbitmq.job_queue", "metaads.sync.jobs")

	// 8. MinIO (bucket: metaads-raw)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "metaads-raw")

	// JWT
	viper.SetDefault("jwt.issuer", "metaads-srv")
	viper.SetDefault("jwt.audience", []string{"metaads-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours
}

func validate(cfg *Config) error {
	// Meta Graph API
	if cfg.MetaAPI.Version == "" {
		return fmt.Errorf("meta_api.version is required")
	}
	if len(cfg.MetaAPI.DefaultFields) == 0 {
		return fmt.Errorf("meta_api.default_fields must have at least one field")
	}
	seen := make(map[string]struct{}, len(cfg.MetaAPI.DefaultFields))
	for _, f := range cfg.MetaAPI.DefaultFields {
		if f == "" {
			return fmt.Errorf("meta_api.default_fields must not contain empty entries")
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("meta_api.default_fields contains duplicate field %q", f)
		}
		seen[f] = struct{}{}
	}

	// Retry policy
	if cfg.Retry.Total <= 0 {
		return fmt.Errorf("retry.total must be a positive integer")
	}
	if cfg.Retry.BackoffFactor < 0 {
		return fmt.Errorf("retry.backoff_factor must not be negative")
	}
	for _, code := range cfg.Retry.StatusForcelist {
		if code < 500 || code > 599 {
			return fmt.Errorf("retry.status_forcelist contains %d, must be within 500-599", code)
		}
	}

	// Loader policy
	switch cfg.Loader.IfExists {
	case "replace", "append", "fail":
	default:
		return fmt.Errorf("loader.if_exists must be one of replace, append, fail")
	}
	if cfg.Loader.ChunkSize <= 0 {
		return fmt.Errorf("loader.chunksize must be a positive integer")
	}

	// PostgreSQL
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	// Redis
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// RabbitMQ
	if cfg.RabbitMQ.Host == "" {
		return fmt.Errorf("rabbitmq.host is required")
	}
	if cfg.RabbitMQ.JobQueue == "" {
		return fmt.Errorf("rabbitmq.job_queue is required")
	}

	// MinIO
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	// JWT
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}

	return nil
}
