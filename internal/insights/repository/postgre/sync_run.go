package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"metaads-srv/internal/insights/repository"
	"metaads-srv/internal/model"
)

const syncRunColumns = `id, account_id, since, until, fields, mode, status, error_message,
	rows_loaded, pages_fetched, duration_ms, archive_prefix,
	started_at, completed_at, created_at, updated_at`

func scanSyncRun(row interface{ Scan(dest ...any) error }) (*model.SyncRun, error) {
	var run model.SyncRun
	var errMsg, archivePrefix sql.NullString
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&run.ID,
		&run.AccountID,
		&run.Since,
		&run.Until,
		pq.Array(&run.Fields),
		&run.Mode,
		&run.Status,
		&errMsg,
		&run.RowsLoaded,
		&run.PagesFetched,
		&run.DurationMs,
		&archivePrefix,
		&startedAt,
		&completedAt,
		&run.CreatedAt,
		&run.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	run.ErrorMessage = errMsg.String
	run.ArchivePrefix = archivePrefix.String
	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	return &run, nil
}

// CreateSyncRun - Insert a new sync run in QUEUED state.
func (r *implRepository) CreateSyncRun(ctx context.Context, opts repository.CreateSyncRunOptions) (*model.SyncRun, error) {
	now := time.Now()
	run := &model.SyncRun{
		ID:        uuid.NewString(),
		AccountID: opts.AccountID,
		Since:     opts.Since,
		Until:     opts.Until,
		Fields:    opts.Fields,
		Mode:      opts.Mode,
		Status:    model.SyncStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO metaads.sync_runs
			(id, account_id, since, until, fields, mode, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.AccountID, run.Since, run.Until, pq.Array(run.Fields),
		run.Mode, run.Status, run.CreatedAt, run.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.CreateSyncRun: Failed to insert run: %v", err)
		return nil, err
	}

	return run, nil
}

// GetSyncRunByID - Get sync run by primary key.
func (r *implRepository) GetSyncRunByID(ctx context.Context, id string) (*model.SyncRun, error) {
	query := `SELECT ` + syncRunColumns + ` FROM metaads.sync_runs WHERE id = $1`

	run, err := scanSyncRun(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrRunNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.GetSyncRunByID: Failed to get run: %v", err)
		return nil, err
	}

	return run, nil
}

// GetLatestCompletedRun - Get the most recently completed run for an account.
func (r *implRepository) GetLatestCompletedRun(ctx context.Context, accountID string) (*model.SyncRun, error) {
	query := `SELECT ` + syncRunColumns + `
		FROM metaads.sync_runs
		WHERE account_id = $1 AND status = $2
		ORDER BY completed_at DESC
		LIMIT 1`

	run, err := scanSyncRun(r.db.QueryRowContext(ctx, query, accountID, model.SyncStatusCompleted))
	if err == sql.ErrNoRows {
		return nil, repository.ErrRunNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.GetLatestCompletedRun: Failed to get run: %v", err)
		return nil, err
	}

	return run, nil
}

// MarkSyncRunRunning - Transition QUEUED -> RUNNING and stamp started_at.
func (r *implRepository) MarkSyncRunRunning(ctx context.Context, id string) error {
	query := `
		UPDATE metaads.sync_runs
		SET status = $2, started_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4`

	res, err := r.db.ExecContext(ctx, query, id, model.SyncStatusRunning, time.Now(), model.SyncStatusQueued)
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.MarkSyncRunRunning: Failed to update run: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrRunNotFound
	}
	return nil
}

// MarkSyncRunCompleted - Record result counters and transition to COMPLETED.
func (r *implRepository) MarkSyncRunCompleted(ctx context.Context, opts repository.CompleteSyncRunOptions) error {
	query := `
		UPDATE metaads.sync_runs
		SET status = $2, rows_loaded = $3, pages_fetched = $4, duration_ms = $5,
			archive_prefix = $6, completed_at = $7, updated_at = $7
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		opts.RunID, model.SyncStatusCompleted, opts.RowsLoaded, opts.PagesFetched,
		opts.DurationMs, opts.ArchivePrefix, opts.CompletedAt)
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.MarkSyncRunCompleted: Failed to update run: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrRunNotFound
	}
	return nil
}

// MarkSyncRunFailed - Record the error message and transition to FAILED.
func (r *implRepository) MarkSyncRunFailed(ctx context.Context, opts repository.FailSyncRunOptions) error {
	query := `
		UPDATE metaads.sync_runs
		SET status = $2, error_message = $3, completed_at = $4, updated_at = $4
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		opts.RunID, model.SyncStatusFailed, opts.ErrorMessage, opts.CompletedAt)
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.MarkSyncRunFailed: Failed to update run: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrRunNotFound
	}
	return nil
}

// ListSyncRuns - List runs with optional account/status filters, newest first.
func (r *implRepository) ListSyncRuns(ctx context.Context, opts repository.ListSyncRunsOptions) ([]model.SyncRun, int64, error) {
	where, args := buildListSyncRunsFilter(opts)

	var total int64
	countQuery := `SELECT COUNT(*) FROM metaads.sync_runs` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.ListSyncRuns: Failed to count runs: %v", err)
		return nil, 0, err
	}

	query, args := buildListSyncRunsQuery(opts, where, args)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.ListSyncRuns: Failed to list runs: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	runs := make([]model.SyncRun, 0)
	for rows.Next() {
		run, err := scanSyncRun(rows)
		if err != nil {
			r.l.Errorf(ctx, "insights.repository.postgre.ListSyncRuns: Failed to scan run: %v", err)
			return nil, 0, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.ListSyncRuns: Rows error: %v", err)
		return nil, 0, err
	}

	return runs, total, nil
}
