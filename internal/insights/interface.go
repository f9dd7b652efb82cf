package insights

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Sync enqueues an insight sync for an account and date range.
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)
	// ExecuteSync runs a queued sync job. Called from the worker.
	ExecuteSync(ctx context.Context, input ExecuteSyncInput) error

	GetSyncRun(ctx context.Context, input GetSyncRunInput) (SyncRunOutput, error)
	// GetLatestRun returns the most recent completed run for an account,
	// served from the cache when it holds one.
	GetLatestRun(ctx context.Context, input GetLatestRunInput) (SyncRunOutput, error)
	ListSyncRuns(ctx context.Context, input ListSyncRunsInput) (ListSyncRunsOutput, error)
	ListInsights(ctx context.Context, input ListInsightsInput) (ListInsightsOutput, error)
}
