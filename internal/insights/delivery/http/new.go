package http

import (
	"metaads-srv/internal/insights"
	"metaads-srv/internal/middleware"
	"metaads-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc insights.UseCase
}

func New(l log.Logger, uc insights.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
