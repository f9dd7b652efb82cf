package postgre

import (
	"fmt"
	"strings"
	"time"

	"metaads-srv/internal/insights/repository"
	"metaads-srv/internal/model"
)

// insightInsertCols excludes the serial id column.
const insightInsertCols = `account_id, sync_run_id,
	ad_id, ad_name, adset_id, adset_name, campaign_id, campaign_name, objective,
	spend, cpc, cpm, clicks, frequency, conversions, conversion_values,
	date_start, date_stop, loaded_at`

const insightInsertWidth = 19

// postgresMaxBindArgs is the bind-parameter limit of the extended query
// protocol. A single statement must stay at or under it.
const postgresMaxBindArgs = 65535

// maxInsertRows is the largest row count one INSERT statement can carry
// without exceeding postgresMaxBindArgs.
const maxInsertRows = postgresMaxBindArgs / insightInsertWidth

// chunkInsights splits rows into insert chunks of at most size rows. The
// size is capped at maxInsertRows so the configured chunksize can never
// produce a statement Postgres rejects.
func chunkInsights(rows []model.AdInsight, size int) [][]model.AdInsight {
	if size <= 0 || size > maxInsertRows {
		size = maxInsertRows
	}
	chunks := make([][]model.AdInsight, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[start:end])
	}
	return chunks
}

func buildInsertInsightsQuery(accountID, runID string, rows []model.AdInsight) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO metaads.ad_insights (` + insightInsertCols + `) VALUES `)

	now := time.Now()
	args := make([]any, 0, len(rows)*insightInsertWidth)
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < insightInsertWidth; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*insightInsertWidth+j+1)
		}
		sb.WriteString(")")

		args = append(args,
			accountID, runID,
			row.AdID, row.AdName, row.AdsetID, row.AdsetName,
			row.CampaignID, row.CampaignName, row.Objective,
			row.Spend, row.CPC, row.CPM, row.Clicks,
			row.Frequency, row.Conversions, row.ConversionValues,
			row.DateStart, row.DateStop, now,
		)
	}

	return sb.String(), args
}

func buildListInsightsFilter(opts repository.ListInsightsOptions) (string, []any) {
	where := " WHERE account_id = $1 AND date_start >= $2 AND date_stop <= $3"
	args := []any{opts.AccountID, opts.Since, opts.Until}

	if opts.CampaignID != "" {
		args = append(args, opts.CampaignID)
		where += fmt.Sprintf(" AND campaign_id = $%d", len(args))
	}

	return where, args
}

func buildListInsightsQuery(opts repository.ListInsightsOptions, where string, args []any) (string, []any) {
	query := `SELECT ` + insightColumns + ` FROM metaads.ad_insights` + where +
		fmt.Sprintf(" ORDER BY date_start, campaign_id, ad_id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, opts.Paginate.Limit, opts.Paginate.Offset())
	return query, args
}
