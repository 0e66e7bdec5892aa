// Package redis bootstraps the go-redis client.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Config holds the Redis connection settings. An empty Addr disables Redis.
type Config struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db" validate:"gte=0"`
	TTL      time.Duration `koanf:"ttl"`
}

// pingTimeout bounds the connectivity check.
const pingTimeout = 2 * time.Second

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		log.Error().Err(err).Str("address", cfg.Addr).Msg("redis connection failed")
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info().Str("address", cfg.Addr).Msg("redis connection successful")
	return rdb, nil
}
