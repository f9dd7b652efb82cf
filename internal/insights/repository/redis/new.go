package redis

import (
	"metaads-srv/internal/insights/repository"
	"metaads-srv/pkg/log"
	pkgRedis "metaads-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
