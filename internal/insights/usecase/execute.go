package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"metaads-srv/internal/insights"
	"metaads-srv/internal/insights/repository"
	"metaads-srv/internal/model"
	"metaads-srv/pkg/metaads"
)

// ExecuteSync runs one queued sync job end to end: page through the Graph
// API, archive raw pages, load the warehouse slice and record the outcome.
func (uc *implUseCase) ExecuteSync(ctx context.Context, input insights.ExecuteSyncInput) error {
	run, err := uc.repo.GetSyncRunByID(ctx, input.RunID)
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return insights.ErrRunNotFound
		}
		uc.l.Errorf(ctx, "insights.usecase.ExecuteSync: Failed to get run %s: %v", input.RunID, err)
		return err
	}
	if run.Status != model.SyncStatusQueued {
		return insights.ErrRunNotQueued
	}

	account, err := uc.accounts.GetAccountByAccountID(ctx, run.AccountID)
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.ExecuteSync: Failed to resolve account for run %s: %v", run.ID, err)
		uc.failRun(ctx, run, "account lookup failed: "+err.Error())
		uc.releaseLock(ctx, run.AccountID, run.Since, run.Until)
		return err
	}

	if err := uc.repo.MarkSyncRunRunning(ctx, run.ID); err != nil {
		uc.l.Errorf(ctx, "insights.usecase.ExecuteSync: Failed to mark run %s running: %v", run.ID, err)
		uc.releaseLock(ctx, run.AccountID, run.Since, run.Until)
		return err
	}

	started := time.Now()
	defer uc.releaseLock(ctx, run.AccountID, run.Since, run.Until)

	if run.Mode == model.LoadModeFail {
		existing, err := uc.repo.CountInsights(ctx, repository.SliceOptions{
			AccountID: run.AccountID,
			Since:     run.Since,
			Until:     run.Until,
		})
		if err != nil {
			uc.failRun(ctx, run, "slice check failed: "+err.Error())
			return err
		}
		if existing > 0 {
			uc.failRun(ctx, run, insights.ErrSliceNotEmpty.Error())
			return insights.ErrSliceNotEmpty
		}
	}

	rows, pages, err := uc.fetchAndArchive(ctx, run, account.AccessToken)
	if err != nil {
		uc.failRun(ctx, run, err.Error())
		return err
	}

	// Replace mode loads even with zero rows so a stale slice from an
	// earlier run is still truncated.
	loaded := 0
	if len(rows) > 0 || run.Mode == model.LoadModeReplace {
		loaded, err = uc.repo.LoadInsights(ctx, repository.LoadInsightsOptions{
			Slice: repository.SliceOptions{
				AccountID: run.AccountID,
				Since:     run.Since,
				Until:     run.Until,
			},
			RunID:     run.ID,
			Rows:      rows,
			Replace:   run.Mode == model.LoadModeReplace,
			ChunkSize: uc.config.ChunkSize,
		})
		if err != nil {
			uc.failRun(ctx, run, "load failed: "+err.Error())
			return err
		}
	}

	completedAt := time.Now()
	if err := uc.repo.MarkSyncRunCompleted(ctx, repository.CompleteSyncRunOptions{
		RunID:         run.ID,
		RowsLoaded:    loaded,
		PagesFetched:  pages,
		DurationMs:    completedAt.Sub(started).Milliseconds(),
		ArchivePrefix: uc.archivePrefix(run),
		CompletedAt:   completedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "insights.usecase.ExecuteSync: Failed to mark run %s completed: %v", run.ID, err)
		return err
	}

	uc.publishCompleted(ctx, run, loaded, pages, completedAt)
	uc.refreshLatestRun(ctx, run.AccountID, run.ID)

	uc.l.Infof(ctx, "insights.usecase.ExecuteSync: Run %s completed, %d rows in %d pages", run.ID, loaded, pages)
	return nil
}

// fetchAndArchive pages through the insights edge, writing each raw page
// to object storage before its rows are parsed.
func (uc *implUseCase) fetchAndArchive(ctx context.Context, run *model.SyncRun, token string) ([]model.AdInsight, int, error) {
	rows := make([]model.AdInsight, 0)
	pages := 0
	after := ""

	for {
		page, err := uc.graph.GetInsights(ctx, metaads.GetInsightsInput{
			AccountID:   run.AccountID,
			AccessToken: token,
			Fields:      run.Fields,
			Since:       run.Since,
			Until:       run.Until,
			Limit:       uc.config.PageLimit,
			After:       after,
		})
		if err != nil {
			return nil, pages, fmt.Errorf("fetch page %d: %w", pages+1, err)
		}
		pages++

		if err := uc.archivePage(ctx, run, pages, page.Raw); err != nil {
			return nil, pages, fmt.Errorf("archive page %d: %w", pages, err)
		}

		for _, in := range page.Data {
			row, err := buildInsightRow(run.AccountID, run.ID, in)
			if err != nil {
				return nil, pages, fmt.Errorf("parse page %d: %w", pages, err)
			}
			rows = append(rows, row)
		}

		if !page.HasNext() {
			break
		}
		after = page.Paging.Cursors.After
	}

	return rows, pages, nil
}

func (uc *implUseCase) archivePrefix(run *model.SyncRun) string {
	return fmt.Sprintf("%s/%s", run.AccountID, run.ID)
}

func (uc *implUseCase) archivePage(ctx context.Context, run *model.SyncRun, page int, raw []byte) error {
	key := fmt.Sprintf("%s/page-%d.json", uc.archivePrefix(run), page)
	_, err := uc.minio.Upload(ctx, uc.config.ArchiveBucket, key, bytes.NewReader(raw), int64(len(raw)), "application/json")
	return err
}

// failRun records the failure and announces it. Best effort on both.
func (uc *implUseCase) failRun(ctx context.Context, run *model.SyncRun, message string) {
	completedAt := time.Now()
	if err := uc.repo.MarkSyncRunFailed(ctx, repository.FailSyncRunOptions{
		RunID:        run.ID,
		ErrorMessage: message,
		CompletedAt:  completedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "insights.usecase: Failed to mark run %s failed: %v", run.ID, err)
	}

	if err := uc.producer.PublishSyncFailed(ctx, insights.SyncEvent{
		RunID:        run.ID,
		AccountID:    run.AccountID,
		Status:       model.SyncStatusFailed,
		ErrorMessage: message,
		CompletedAt:  completedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "insights.usecase: Failed to publish failure event for run %s: %v", run.ID, err)
	}
}

func (uc *implUseCase) publishCompleted(ctx context.Context, run *model.SyncRun, loaded, pages int, completedAt time.Time) {
	if err := uc.producer.PublishSyncCompleted(ctx, insights.SyncEvent{
		RunID:        run.ID,
		AccountID:    run.AccountID,
		Status:       model.SyncStatusCompleted,
		RowsLoaded:   loaded,
		PagesFetched: pages,
		CompletedAt:  completedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "insights.usecase: Failed to publish completion event for run %s: %v", run.ID, err)
	}
}

// refreshLatestRun re-reads the run so the cache holds final counters.
func (uc *implUseCase) refreshLatestRun(ctx context.Context, accountID, runID string) {
	run, err := uc.repo.GetSyncRunByID(ctx, runID)
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase: Failed to reload run %s for cache: %v", runID, err)
		return
	}
	if err := uc.cache.SetLatestRun(ctx, accountID, run); err != nil {
		uc.l.Errorf(ctx, "insights.usecase: Failed to cache latest run for %s: %v", accountID, err)
	}
}
