// Package ratelimit implements a Redis-backed sliding-window rate limiter
// used to throttle the credential endpoints.
package ratelimit

import (
	"context"
	"log/slog"

	"asana/config"
	"asana/internal/domain/lifecycle"
	"asana/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams defines the required parameters
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client backing the limiter.
// Redis is optional: when no redis section is configured the client is nil
// and the limiter middleware becomes a no-op.
func NewClient(params ClientParams) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
