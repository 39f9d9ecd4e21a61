package cache

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to Redis and verifies the connection before returning.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
	}
	return client, nil
}
