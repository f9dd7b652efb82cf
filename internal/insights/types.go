package insights

import (
	"metaads-srv/internal/model"
	"metaads-srv/pkg/paginator"
)

type SyncInput struct {
	AccountID string // Meta account ID, e.g. "act_123456789"
	Since     string // YYYY-MM-DD
	Until     string // YYYY-MM-DD
	Fields    []string
	Mode      string // replace | append | fail, defaults to replace
}

type SyncOutput struct {
	Run model.SyncRun
}

type ExecuteSyncInput struct {
	RunID string
}

type GetSyncRunInput struct {
	RunID string
}

type GetLatestRunInput struct {
	AccountID string
}

type SyncRunOutput struct {
	Run model.SyncRun
}

type ListSyncRunsInput struct {
	AccountID string
	Status    string
	Paginate  paginator.PaginateQuery
}

type ListSyncRunsOutput struct {
	Runs      []model.SyncRun
	Paginator paginator.Paginator
}

type ListInsightsInput struct {
	AccountID  string
	Since      string
	Until      string
	CampaignID string
	Paginate   paginator.PaginateQuery
}

type ListInsightsOutput struct {
	Insights  []model.AdInsight
	Paginator paginator.Paginator
}
