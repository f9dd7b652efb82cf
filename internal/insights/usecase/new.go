package usecase

import (
	accountRepo "metaads-srv/internal/account/repository"
	"metaads-srv/internal/insights"
	"metaads-srv/internal/insights/repository"
	"metaads-srv/internal/model"
	"metaads-srv/pkg/log"
	"metaads-srv/pkg/metaads"
	"metaads-srv/pkg/minio"
)

const (
	defaultArchiveBucket = "metaads-raw"
	defaultChunkSize     = 10000
	defaultLoadMode      = model.LoadModeReplace
)

// Config holds tunables for sync execution.
type Config struct {
	// ArchiveBucket receives the raw Graph API pages.
	ArchiveBucket string
	// ChunkSize bounds how many rows one warehouse INSERT carries.
	ChunkSize int
	// DefaultMode is the bulk-load conflict mode when a request names none.
	DefaultMode string
	// DefaultFields is the insight field list when a request names none.
	DefaultFields []string
	// PageLimit is the Graph API page size.
	PageLimit int
}

type implUseCase struct {
	l        log.Logger
	repo     repository.InsightsRepository
	cache    repository.CacheRepository
	accounts accountRepo.AccountRepository
	graph    metaads.IMetaAds
	minio    minio.MinIO
	jobs     insights.JobQueue
	producer insights.Producer
	config   Config
}

// New creates a new insights UseCase implementation.
func New(
	l log.Logger,
	repo repository.InsightsRepository,
	cache repository.CacheRepository,
	accounts accountRepo.AccountRepository,
	graph metaads.IMetaAds,
	minioClient minio.MinIO,
	jobs insights.JobQueue,
	producer insights.Producer,
	cfg Config,
) insights.UseCase {
	if cfg.ArchiveBucket == "" {
		cfg.ArchiveBucket = defaultArchiveBucket
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = defaultLoadMode
	}
	if len(cfg.DefaultFields) == 0 {
		cfg.DefaultFields = metaads.DefaultInsightsFields()
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = metaads.DefaultPageLimit
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		cache:    cache,
		accounts: accounts,
		graph:    graph,
		minio:    minioClient,
		jobs:     jobs,
		producer: producer,
		config:   cfg,
	}
}
