package http

import (
	"time"

	"metaads-srv/internal/insights"
	"metaads-srv/internal/model"
	"metaads-srv/pkg/paginator"
	"metaads-srv/pkg/response"
)

type syncReq struct {
	AccountID string   `json:"account_id" binding:"required"`
	Since     string   `json:"since" binding:"required"`
	Until     string   `json:"until" binding:"required"`
	Fields    []string `json:"fields,omitempty"`
	Mode      string   `json:"mode,omitempty"`
}

func (r syncReq) toInput() insights.SyncInput {
	return insights.SyncInput{
		AccountID: r.AccountID,
		Since:     r.Since,
		Until:     r.Until,
		Fields:    r.Fields,
		Mode:      r.Mode,
	}
}

type getSyncRunReq struct {
	RunID string
}

func (r getSyncRunReq) toInput() insights.GetSyncRunInput {
	return insights.GetSyncRunInput{
		RunID: r.RunID,
	}
}

type getLatestRunReq struct {
	AccountID string
}

func (r getLatestRunReq) toInput() insights.GetLatestRunInput {
	return insights.GetLatestRunInput{
		AccountID: r.AccountID,
	}
}

type listSyncRunsReq struct {
	AccountID string `form:"account_id"`
	Status    string `form:"status"`
	paginator.PaginateQuery
}

func (r listSyncRunsReq) toInput() insights.ListSyncRunsInput {
	return insights.ListSyncRunsInput{
		AccountID: r.AccountID,
		Status:    r.Status,
		Paginate:  r.PaginateQuery,
	}
}

type listInsightsReq struct {
	AccountID  string `form:"account_id" binding:"required"`
	Since      string `form:"since" binding:"required"`
	Until      string `form:"until" binding:"required"`
	CampaignID string `form:"campaign_id"`
	paginator.PaginateQuery
}

func (r listInsightsReq) toInput() insights.ListInsightsInput {
	return insights.ListInsightsInput{
		AccountID:  r.AccountID,
		Since:      r.Since,
		Until:      r.Until,
		CampaignID: r.CampaignID,
		Paginate:   r.PaginateQuery,
	}
}

type syncRunObj struct {
	ID            string             `json:"id"`
	AccountID     string             `json:"account_id"`
	Since         string             `json:"since"`
	Until         string             `json:"until"`
	Fields        []string           `json:"fields"`
	Mode          string             `json:"mode"`
	Status        string             `json:"status"`
	ErrorMessage  string             `json:"error_message,omitempty"`
	RowsLoaded    int                `json:"rows_loaded"`
	PagesFetched  int                `json:"pages_fetched"`
	DurationMs    int64              `json:"duration_ms"`
	ArchivePrefix string             `json:"archive_prefix,omitempty"`
	StartedAt     *response.DateTime `json:"started_at,omitempty"`
	CompletedAt   *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt     response.DateTime  `json:"created_at"`
}

func (h *handler) newSyncRunResp(run model.SyncRun) syncRunObj {
	obj := syncRunObj{
		ID:            run.ID,
		AccountID:     run.AccountID,
		Since:         run.Since,
		Until:         run.Until,
		Fields:        run.Fields,
		Mode:          run.Mode,
		Status:        run.Status,
		ErrorMessage:  run.ErrorMessage,
		RowsLoaded:    run.RowsLoaded,
		PagesFetched:  run.PagesFetched,
		DurationMs:    run.DurationMs,
		ArchivePrefix: run.ArchivePrefix,
		CreatedAt:     response.DateTime(run.CreatedAt),
	}
	obj.StartedAt = toDateTime(run.StartedAt)
	obj.CompletedAt = toDateTime(run.CompletedAt)
	return obj
}

func toDateTime(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	dt := response.DateTime(*t)
	return &dt
}

type listSyncRunsResp struct {
	Items []syncRunObj                `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *handler) newListSyncRunsResp(o insights.ListSyncRunsOutput) listSyncRunsResp {
	items := make([]syncRunObj, 0, len(o.Runs))
	for _, run := range o.Runs {
		items = append(items, h.newSyncRunResp(run))
	}

	return listSyncRunsResp{
		Items: items,
		Meta:  o.Paginator.ToResponse(),
	}
}

type insightObj struct {
	AdID             string        `json:"ad_id"`
	AdName           string        `json:"ad_name"`
	AdsetID          string        `json:"adset_id"`
	AdsetName        string        `json:"adset_name"`
	CampaignID       string        `json:"campaign_id"`
	CampaignName     string        `json:"campaign_name"`
	Objective        string        `json:"objective"`
	Spend            float64       `json:"spend"`
	CPC              float64       `json:"cpc"`
	CPM              float64       `json:"cpm"`
	Clicks           int64         `json:"clicks"`
	Frequency        float64       `json:"frequency"`
	Conversions      float64       `json:"conversions"`
	ConversionValues float64       `json:"conversion_values"`
	DateStart        response.Date `json:"date_start"`
	DateStop         response.Date `json:"date_stop"`
	SyncRunID        string        `json:"sync_run_id"`
}

type listInsightsResp struct {
	Items []insightObj                `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *handler) newListInsightsResp(o insights.ListInsightsOutput) listInsightsResp {
	items := make([]insightObj, 0, len(o.Insights))
	for _, row := range o.Insights {
		items = append(items, insightObj{
			AdID:             row.AdID,
			AdName:           row.AdName,
			AdsetID:          row.AdsetID,
			AdsetName:        row.AdsetName,
			CampaignID:       row.CampaignID,
			CampaignName:     row.CampaignName,
			Objective:        row.Objective,
			Spend:            row.Spend,
			CPC:              row.CPC,
			CPM:              row.CPM,
			Clicks:           row.Clicks,
			Frequency:        row.Frequency,
			Conversions:      row.Conversions,
			ConversionValues: row.ConversionValues,
			DateStart:        response.Date(row.DateStart),
			DateStop:         response.Date(row.DateStop),
			SyncRunID:        row.SyncRunID,
		})
	}

	return listInsightsResp{
		Items: items,
		Meta:  o.Paginator.ToResponse(),
	}
}
