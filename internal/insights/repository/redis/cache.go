package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"metaads-srv/internal/insights/repository"
	"metaads-srv/internal/model"
	pkgRedis "metaads-srv/pkg/redis"
)

const (
	// syncLockTTL bounds how long a crashed worker can hold a slice.
	syncLockTTL = 2 * time.Hour

	latestRunTTL = 24 * time.Hour
)

func syncLockKey(accountID, since, until string) string {
	return fmt.Sprintf("sync_lock:%s:%s:%s", accountID, since, until)
}

func latestRunKey(accountID string) string {
	return fmt.Sprintf("latest_run:%s", accountID)
}

// AcquireSyncLock reserves the (account, range) slice via SETNX.
func (r *implCacheRepository) AcquireSyncLock(ctx context.Context, accountID, since, until string) (bool, error) {
	acquired, err := r.redis.SetNX(ctx, syncLockKey(accountID, since, until), "1", syncLockTTL)
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.redis.AcquireSyncLock: Failed to acquire lock: %v", err)
		return false, err
	}
	return acquired, nil
}

func (r *implCacheRepository) ReleaseSyncLock(ctx context.Context, accountID, since, until string) error {
	if err := r.redis.Delete(ctx, syncLockKey(accountID, since, until)); err != nil {
		r.l.Errorf(ctx, "insights.repository.redis.ReleaseSyncLock: Failed to release lock: %v", err)
		return err
	}
	return nil
}

// SetLatestRun caches the most recent completed run for an account.
func (r *implCacheRepository) SetLatestRun(ctx context.Context, accountID string, run *model.SyncRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, latestRunKey(accountID), data, latestRunTTL); err != nil {
		r.l.Errorf(ctx, "insights.repository.redis.SetLatestRun: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

// GetLatestRun returns the cached run or nil on a cache miss.
func (r *implCacheRepository) GetLatestRun(ctx context.Context, accountID string) (*model.SyncRun, error) {
	data, err := r.redis.Get(ctx, latestRunKey(accountID))
	if pkgRedis.IsNil(err) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.redis.GetLatestRun: Failed to read cache: %v", err)
		return nil, err
	}

	var run model.SyncRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		r.l.Errorf(ctx, "insights.repository.redis.GetLatestRun: Failed to unmarshal run: %v", err)
		return nil, repository.ErrCacheDecode
	}
	return &run, nil
}
