package middleware

import (
	"metaads-srv/config"
	pkgJWT "metaads-srv/pkg/jwt"
	"metaads-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager *pkgJWT.Manager
	config     *config.Config
}

func New(l log.Logger, jwtManager *pkgJWT.Manager, cfg *config.Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
	}
}
