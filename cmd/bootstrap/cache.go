package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hall-booking/internal/infra/cache"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/usecase/queries"
	"hall-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewScheduleCache,
			fx.As(new(queries.ScheduleCache)),
			fx.As(new(shared.ScheduleInvalidator)),
		),
	),
)

// NewRedisClient returns nil when caching is disabled or Redis is unreachable;
// the schedule cache then serves every read from Postgres.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if !cfg.Cache.Enabled {
		slog.Info("schedule cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, schedule cache disabled", "addr", cfg.Cache.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	slog.Info("schedule cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	return client
}

func NewScheduleCache(client *redis.Client, cfg config.Config) *cache.ScheduleCache {
	return cache.NewScheduleCache(client, cfg.Cache)
}
