package usecase

import (
	"context"
	"errors"

	"metaads-srv/internal/insights"
	"metaads-srv/internal/insights/repository"
)

// GetSyncRun returns one run by ID.
func (uc *implUseCase) GetSyncRun(ctx context.Context, input insights.GetSyncRunInput) (insights.SyncRunOutput, error) {
	run, err := uc.repo.GetSyncRunByID(ctx, input.RunID)
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return insights.SyncRunOutput{}, insights.ErrRunNotFound
		}
		uc.l.Errorf(ctx, "insights.usecase.GetSyncRun: Failed to get run: %v", err)
		return insights.SyncRunOutput{}, err
	}

	return insights.SyncRunOutput{Run: *run}, nil
}

// GetLatestRun returns the most recent completed run for an account. The
// cache is consulted first; the warehouse answer re-warms it.
func (uc *implUseCase) GetLatestRun(ctx context.Context, input insights.GetLatestRunInput) (insights.SyncRunOutput, error) {
	cached, err := uc.cache.GetLatestRun(ctx, input.AccountID)
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.GetLatestRun: Cache read failed for %s: %v", input.AccountID, err)
	}
	if cached != nil {
		return insights.SyncRunOutput{Run: *cached}, nil
	}

	run, err := uc.repo.GetLatestCompletedRun(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return insights.SyncRunOutput{}, insights.ErrRunNotFound
		}
		uc.l.Errorf(ctx, "insights.usecase.GetLatestRun: Failed to get latest run: %v", err)
		return insights.SyncRunOutput{}, err
	}

	if err := uc.cache.SetLatestRun(ctx, input.AccountID, run); err != nil {
		uc.l.Errorf(ctx, "insights.usecase.GetLatestRun: Failed to warm cache for %s: %v", input.AccountID, err)
	}

	return insights.SyncRunOutput{Run: *run}, nil
}

// ListSyncRuns returns runs filtered by account and status.
func (uc *implUseCase) ListSyncRuns(ctx context.Context, input insights.ListSyncRunsInput) (insights.ListSyncRunsOutput, error) {
	input.Paginate.Adjust()

	runs, total, err := uc.repo.ListSyncRuns(ctx, repository.ListSyncRunsOptions{
		AccountID: input.AccountID,
		Status:    input.Status,
		Paginate:  input.Paginate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.ListSyncRuns: Failed to list runs: %v", err)
		return insights.ListSyncRunsOutput{}, err
	}

	return insights.ListSyncRunsOutput{
		Runs:      runs,
		Paginator: input.Paginate.ToPaginator(total, int64(len(runs))),
	}, nil
}

// ListInsights returns loaded warehouse rows for one slice.
func (uc *implUseCase) ListInsights(ctx context.Context, input insights.ListInsightsInput) (insights.ListInsightsOutput, error) {
	if !validDateRange(input.Since, input.Until) {
		return insights.ListInsightsOutput{}, insights.ErrInvalidDateRange
	}

	input.Paginate.Adjust()

	rows, total, err := uc.repo.ListInsights(ctx, repository.ListInsightsOptions{
		AccountID:  input.AccountID,
		Since:      input.Since,
		Until:      input.Until,
		CampaignID: input.CampaignID,
		Paginate:   input.Paginate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.ListInsights: Failed to list insights: %v", err)
		return insights.ListInsightsOutput{}, err
	}

	return insights.ListInsightsOutput{
		Insights:  rows,
		Paginator: input.Paginate.ToPaginator(total, int64(len(rows))),
	}, nil
}
