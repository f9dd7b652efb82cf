package http

import (
	"metaads-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Sync enqueues an insight sync run for an account and date range.
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.Sync: processSyncRequest failed: %v", err)
		response.BadRequest(c, "Invalid request body")
		return
	}

	o, err := h.uc.Sync(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.Sync: usecase Sync failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncRunResp(o.Run))
}

// GetSyncRun returns one sync run with its status and counters.
func (h *handler) GetSyncRun(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processGetSyncRunRequest(c)

	o, err := h.uc.GetSyncRun(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetSyncRun: usecase GetSyncRun failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncRunResp(o.Run))
}

// GetLatestSyncRun returns the most recent completed run for an account.
func (h *handler) GetLatestSyncRun(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processGetLatestRunRequest(c)

	o, err := h.uc.GetLatestRun(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetLatestSyncRun: usecase GetLatestRun failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncRunResp(o.Run))
}

// ListSyncRuns returns runs filtered by account and status.
func (h *handler) ListSyncRuns(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListSyncRunsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.ListSyncRuns: processListSyncRunsRequest failed: %v", err)
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	o, err := h.uc.ListSyncRuns(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.ListSyncRuns: usecase ListSyncRuns failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListSyncRunsResp(o))
}

// ListInsights returns loaded warehouse rows for a slice.
func (h *handler) ListInsights(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListInsightsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.ListInsights: processListInsightsRequest failed: %v", err)
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	o, err := h.uc.ListInsights(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.ListInsights: usecase ListInsights failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListInsightsResp(o))
}
