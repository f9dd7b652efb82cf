package repository

import (
	"context"

	"metaads-srv/internal/model"
)

//go:generate mockery --name InsightsRepository
type InsightsRepository interface {
	// Sync runs
	CreateSyncRun(ctx context.Context, opts CreateSyncRunOptions) (*model.SyncRun, error)
	GetSyncRunByID(ctx context.Context, id string) (*model.SyncRun, error)
	MarkSyncRunRunning(ctx context.Context, id string) error
	MarkSyncRunCompleted(ctx context.Context, opts CompleteSyncRunOptions) error
	MarkSyncRunFailed(ctx context.Context, opts FailSyncRunOptions) error
	ListSyncRuns(ctx context.Context, opts ListSyncRunsOptions) ([]model.SyncRun, int64, error)
	GetLatestCompletedRun(ctx context.Context, accountID string) (*model.SyncRun, error)

	// Insight rows
	CountInsights(ctx context.Context, opts SliceOptions) (int64, error)
	// LoadInsights writes rows for one run in a single transaction. When
	// Replace is set the account+range slice is truncated first.
	LoadInsights(ctx context.Context, opts LoadInsightsOptions) (int, error)
	ListInsights(ctx context.Context, opts ListInsightsOptions) ([]model.AdInsight, int64, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// AcquireSyncLock reserves the (account, range) slice. Returns false
	// when another run holds it.
	AcquireSyncLock(ctx context.Context, accountID, since, until string) (bool, error)
	ReleaseSyncLock(ctx context.Context, accountID, since, until string) error

	SetLatestRun(ctx context.Context, accountID string, run *model.SyncRun) error
	GetLatestRun(ctx context.Context, accountID string) (*model.SyncRun, error)
}
