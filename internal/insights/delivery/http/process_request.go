package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSyncRequest(c *gin.Context) (syncReq, error) {
	var req syncReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	return req, nil
}

func (h *handler) processGetSyncRunRequest(c *gin.Context) getSyncRunReq {
	return getSyncRunReq{
		RunID: c.Param("run_id"),
	}
}

func (h *handler) processGetLatestRunRequest(c *gin.Context) getLatestRunReq {
	return getLatestRunReq{
		AccountID: c.Param("account_id"),
	}
}

func (h *handler) processListSyncRunsRequest(c *gin.Context) (listSyncRunsReq, error) {
	var req listSyncRunsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}

func (h *handler) processListInsightsRequest(c *gin.Context) (listInsightsReq, error) {
	var req listInsightsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}
