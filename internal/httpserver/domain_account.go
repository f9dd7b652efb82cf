package httpserver

import (
	"github.com/gin-gonic/gin"

	accountHTTP "metaads-srv/internal/account/delivery/http"
	accountPostgre "metaads-srv/internal/account/repository/postgre"
	accountUsecase "metaads-srv/internal/account/usecase"
	"metaads-srv/internal/middleware"
)

func (srv *HTTPServer) setupAccountDomain(r *gin.RouterGroup, mw middleware.Middleware) {
	repo := accountPostgre.New(srv.postgresDB, srv.l)

	uc := accountUsecase.New(repo, srv.l)

	handler := accountHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)
}
