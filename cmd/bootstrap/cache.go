package bootstrap

import (
	"context"
	"log/slog"

	"github.com/antoninkin/parkmate-app/internal/infra/cache"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"go.uber.org/fx"
)

type locationCache interface {
	queries.LocationCache
	commands.LocationCacheInvalidator
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewLocationCache,
		func(c locationCache) queries.LocationCache { return c },
		func(c locationCache) commands.LocationCacheInvalidator { return c },
	),
)

// NewLocationCache falls back to a no-op cache when REDIS_ADDR is empty.
func NewLocationCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (locationCache, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("location cache disabled")
		return cache.NopLocationCache{}, nil
	}

	client, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("location cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.LocationCacheTTL)
	return cache.NewRedisLocationCache(client, cfg.Redis.LocationCacheTTL), nil
}
