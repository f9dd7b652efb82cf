package repository

import (
	"time"

	"metaads-srv/internal/model"
	"metaads-srv/pkg/paginator"
)

type CreateSyncRunOptions struct {
	AccountID string
	Since     string
	Until     string
	Fields    []string
	Mode      string
}

type CompleteSyncRunOptions struct {
	RunID         string
	RowsLoaded    int
	PagesFetched  int
	DurationMs    int64
	ArchivePrefix string
	CompletedAt   time.Time
}

type FailSyncRunOptions struct {
	RunID        string
	ErrorMessage string
	CompletedAt  time.Time
}

type ListSyncRunsOptions struct {
	AccountID string
	Status    string
	Paginate  paginator.PaginateQuery
}

// SliceOptions identifies the warehouse slice for one account and date range.
type SliceOptions struct {
	AccountID string
	Since     string
	Until     string
}

type LoadInsightsOptions struct {
	Slice   SliceOptions
	RunID   string
	Rows    []model.AdInsight
	Replace bool
	// ChunkSize bounds how many rows one INSERT carries.
	ChunkSize int
}

type ListInsightsOptions struct {
	AccountID  string
	Since      string
	Until      string
	CampaignID string
	Paginate   paginator.PaginateQuery
}
