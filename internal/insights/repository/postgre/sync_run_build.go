package postgre

import (
	"fmt"

	"metaads-srv/internal/insights/repository"
)

func buildListSyncRunsFilter(opts repository.ListSyncRunsOptions) (string, []any) {
	where := ""
	args := make([]any, 0, 2)

	appendCond := func(cond string, value any) {
		args = append(args, value)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}

	if opts.AccountID != "" {
		appendCond("account_id = $%d", opts.AccountID)
	}
	if opts.Status != "" {
		appendCond("status = $%d", opts.Status)
	}

	return where, args
}

func buildListSyncRunsQuery(opts repository.ListSyncRunsOptions, where string, args []any) (string, []any) {
	query := `SELECT ` + syncRunColumns + ` FROM metaads.sync_runs` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, opts.Paginate.Limit, opts.Paginate.Offset())
	return query, args
}
