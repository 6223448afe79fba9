// Package redisstore keeps session snapshots and challenges in Redis.
package redisstore

import (
	"context"
	"log/slog"
	"time"

	"railmadad/config"
	"railmadad/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const poolMonitorInterval = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client and ties it to the application lifecycle.
func New(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		return nil, errors.New("redis address is not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			go monitorPool(monitorCtx, params.Logger, client, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

func monitorPool(ctx context.Context, logger *slog.Logger, client *redis.Client, interval time.Duration) {
	if logger == nil || client == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := client.PoolStats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := client.PoolStats()
			if timeouts := cur.Timeouts - prev.Timeouts; timeouts > 0 {
				logger.LogAttrs(ctx, slog.LevelWarn, "Redis pool timeouts detected",
					slog.Any("timeoutsDelta", timeouts),
					slog.Any("totalConns", cur.TotalConns),
					slog.Any("idleConns", cur.IdleConns),
					slog.Any("staleConns", cur.StaleConns),
				)
			}
			prev = cur
		}
	}
}
