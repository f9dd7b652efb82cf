package postgre

import (
	"context"

	"metaads-srv/internal/insights/repository"
	"metaads-srv/internal/model"
)

const insightColumns = `id, account_id, sync_run_id,
	ad_id, ad_name, adset_id, adset_name, campaign_id, campaign_name, objective,
	spend, cpc, cpm, clicks, frequency, conversions, conversion_values,
	date_start, date_stop, loaded_at`

func scanInsight(row interface{ Scan(dest ...any) error }) (*model.AdInsight, error) {
	var ins model.AdInsight
	err := row.Scan(
		&ins.ID,
		&ins.AccountID,
		&ins.SyncRunID,
		&ins.AdID,
		&ins.AdName,
		&ins.AdsetID,
		&ins.AdsetName,
		&ins.CampaignID,
		&ins.CampaignName,
		&ins.Objective,
		&ins.Spend,
		&ins.CPC,
		&ins.CPM,
		&ins.Clicks,
		&ins.Frequency,
		&ins.Conversions,
		&ins.ConversionValues,
		&ins.DateStart,
		&ins.DateStop,
		&ins.LoadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ins, nil
}

// CountInsights - Count rows in one account+range slice.
func (r *implRepository) CountInsights(ctx context.Context, opts repository.SliceOptions) (int64, error) {
	query := `
		SELECT COUNT(*) FROM metaads.ad_insights
		WHERE account_id = $1 AND date_start >= $2 AND date_stop <= $3`

	var total int64
	if err := r.db.QueryRowContext(ctx, query, opts.AccountID, opts.Since, opts.Until).Scan(&total); err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.CountInsights: Failed to count insights: %v", err)
		return 0, err
	}
	return total, nil
}

// LoadInsights - Write all rows of one run in a single transaction.
// Replace mode deletes the slice first so a failed run keeps the old rows.
func (r *implRepository) LoadInsights(ctx context.Context, opts repository.LoadInsightsOptions) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.LoadInsights: Failed to begin tx: %v", err)
		return 0, repository.ErrLoadFailed
	}
	defer tx.Rollback()

	if opts.Replace {
		deleteQuery := `
			DELETE FROM metaads.ad_insights
			WHERE account_id = $1 AND date_start >= $2 AND date_stop <= $3`
		if _, err := tx.ExecContext(ctx, deleteQuery, opts.Slice.AccountID, opts.Slice.Since, opts.Slice.Until); err != nil {
			r.l.Errorf(ctx, "insights.repository.postgre.LoadInsights: Failed to truncate slice: %v", err)
			return 0, repository.ErrLoadFailed
		}
	}

	loaded := 0
	for _, chunk := range chunkInsights(opts.Rows, opts.ChunkSize) {
		query, args := buildInsertInsightsQuery(opts.Slice.AccountID, opts.RunID, chunk)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.l.Errorf(ctx, "insights.repository.postgre.LoadInsights: Failed to insert chunk: %v", err)
			return 0, repository.ErrLoadFailed
		}
		loaded += len(chunk)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.LoadInsights: Failed to commit: %v", err)
		return 0, repository.ErrLoadFailed
	}

	return loaded, nil
}

// ListInsights - List loaded rows for one slice, optionally by campaign.
func (r *implRepository) ListInsights(ctx context.Context, opts repository.ListInsightsOptions) ([]model.AdInsight, int64, error) {
	where, args := buildListInsightsFilter(opts)

	var total int64
	countQuery := `SELECT COUNT(*) FROM metaads.ad_insights` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.ListInsights: Failed to count insights: %v", err)
		return nil, 0, err
	}

	query, args := buildListInsightsQuery(opts, where, args)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.ListInsights: Failed to list insights: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]model.AdInsight, 0)
	for rows.Next() {
		ins, err := scanInsight(rows)
		if err != nil {
			r.l.Errorf(ctx, "insights.repository.postgre.ListInsights: Failed to scan insight: %v", err)
			return nil, 0, err
		}
		result = append(result, *ins)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "insights.repository.postgre.ListInsights: Rows error: %v", err)
		return nil, 0, err
	}

	return result, total, nil
}
