package redis

import (
	"shadergen-srv/internal/library/repository"
	"shadergen-srv/pkg/log"
	pkgRedis "shadergen-srv/pkg/redis"
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
