// Package activation contains the Redis-backed store for pending device
// activations.
package activation

import (
	"context"
	"log/slog"

	"echofleet/config"
	"echofleet/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the Redis client backing the activation store.
func NewRedisClient(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis config is required")
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

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
