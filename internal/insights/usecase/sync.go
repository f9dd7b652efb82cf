package usecase

import (
	"context"
	"errors"
	"time"

	accountRepository "metaads-srv/internal/account/repository"
	"metaads-srv/internal/insights"
	"metaads-srv/internal/insights/repository"
)

// Sync validates the request, reserves the slice and enqueues a run.
func (uc *implUseCase) Sync(ctx context.Context, input insights.SyncInput) (insights.SyncOutput, error) {
	if _, err := uc.accounts.GetAccountByAccountID(ctx, input.AccountID); err != nil {
		if errors.Is(err, accountRepository.ErrAccountNotFound) {
			return insights.SyncOutput{}, insights.ErrAccountNotFound
		}
		uc.l.Errorf(ctx, "insights.usecase.Sync: Failed to resolve account: %v", err)
		return insights.SyncOutput{}, err
	}

	if !validDateRange(input.Since, input.Until) {
		return insights.SyncOutput{}, insights.ErrInvalidDateRange
	}

	if len(input.Fields) == 0 {
		input.Fields = uc.config.DefaultFields
	}
	if !validFields(input.Fields) {
		return insights.SyncOutput{}, insights.ErrInvalidFields
	}

	if input.Mode == "" {
		input.Mode = uc.config.DefaultMode
	}
	if !validMode(input.Mode) {
		return insights.SyncOutput{}, insights.ErrInvalidMode
	}

	acquired, err := uc.cache.AcquireSyncLock(ctx, input.AccountID, input.Since, input.Until)
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.Sync: Failed to acquire sync lock: %v", err)
		return insights.SyncOutput{}, err
	}
	if !acquired {
		return insights.SyncOutput{}, insights.ErrSyncInFlight
	}

	run, err := uc.repo.CreateSyncRun(ctx, repository.CreateSyncRunOptions{
		AccountID: input.AccountID,
		Since:     input.Since,
		Until:     input.Until,
		Fields:    input.Fields,
		Mode:      input.Mode,
	})
	if err != nil {
		uc.l.Errorf(ctx, "insights.usecase.Sync: Failed to create run: %v", err)
		uc.releaseLock(ctx, input.AccountID, input.Since, input.Until)
		return insights.SyncOutput{}, err
	}

	job := insights.SyncJob{
		RunID:      run.ID,
		AccountID:  run.AccountID,
		EnqueuedAt: time.Now(),
	}
	if err := uc.jobs.EnqueueSyncJob(ctx, job); err != nil {
		uc.l.Errorf(ctx, "insights.usecase.Sync: Failed to enqueue job for run %s: %v", run.ID, err)
		uc.failRun(ctx, run, "enqueue failed: "+err.Error())
		uc.releaseLock(ctx, input.AccountID, input.Since, input.Until)
		return insights.SyncOutput{}, err
	}

	uc.l.Infof(ctx, "insights.usecase.Sync: Run %s queued for %s [%s..%s]", run.ID, run.AccountID, run.Since, run.Until)
	return insights.SyncOutput{Run: *run}, nil
}

func (uc *implUseCase) releaseLock(ctx context.Context, accountID, since, until string) {
	if err := uc.cache.ReleaseSyncLock(ctx, accountID, since, until); err != nil {
		uc.l.Errorf(ctx, "insights.usecase: Failed to release sync lock for %s [%s..%s]: %v", accountID, since, until, err)
	}
}
