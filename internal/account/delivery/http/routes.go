package http

import (
	"metaads-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/accounts", h.RegisterAccount)
		api.GET("/accounts", h.ListAccounts)
		api.GET("/accounts/:account_id", h.GetAccount)
	}

	// Service-to-service surface, authenticated by X-Service-Key.
	internal := r.Group("/internal/api/v1")
	internal.Use(mw.ServiceAuth())
	{
		internal.POST("/accounts", h.RegisterAccount)
	}
}
