package http

import (
	"metaads-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/syncs", h.Sync)
		api.GET("/syncs", h.ListSyncRuns)
		api.GET("/syncs/:run_id", h.GetSyncRun)
		api.GET("/accounts/:account_id/syncs/latest", h.GetLatestSyncRun)
		api.GET("/insights", h.ListInsights)
	}

	// Service-to-service surface, authenticated by X-Service-Key.
	internal := r.Group("/internal/api/v1")
	internal.Use(mw.ServiceAuth())
	{
		internal.POST("/syncs", h.Sync)
		internal.GET("/syncs/:run_id", h.GetSyncRun)
	}
}
