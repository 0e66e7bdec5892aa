// Package di provides factories that pick component implementations at startup.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	useradapters "github.com/andresavalerio/software-engineering-backend/internal/feature/user/adapters"
	"github.com/andresavalerio/software-engineering-backend/internal/feature/user/usecase"
	"github.com/andresavalerio/software-engineering-backend/internal/platform/cache"
)

// userCacheNamespace prefixes every cached user key.
const userCacheNamespace = "users"

// NewUserRepository returns the gorm user repository, wrapped in the Redis
// read-through cache when rdb is not nil.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.UserRepository {
	repo := useradapters.NewUserGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingUserRepository(rdb, ttl, repo, userCacheNamespace)
}
