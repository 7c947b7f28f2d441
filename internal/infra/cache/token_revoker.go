// Package cache provides the session revocation list, Redis-backed when configured.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const revokedTokenKeyPrefix = "revoked:access_token:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// redisTokenRevoker stores revoked token ids as keys expiring with the token itself.
type redisTokenRevoker struct {
	client *redis.Client
	logger *slog.Logger
}

// memoryTokenRevoker is used when Redis is not configured. Revocations are
// local to the process and lost on restart.
type memoryTokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewTokenRevoker creates the revocation list from config.
func NewTokenRevoker(params Params) service.TokenRevoker {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Warn("Redis not configured, session revocation kept in memory")

		return newMemoryTokenRevoker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
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

	return newRedisTokenRevoker(client, params.Logger)
}

func newRedisTokenRevoker(client *redis.Client, logger *slog.Logger) *redisTokenRevoker {
	return &redisTokenRevoker{client: client, logger: logger}
}

// Revoke marks the token id as revoked until expiresAt. Already expired tokens are skipped.
func (r *redisTokenRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, revokedTokenKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

// IsRevoked fails open: when Redis is unreachable the token is treated as valid and a warning is logged.
func (r *redisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		r.logger.WarnContext(ctx, "Revocation lookup failed, accepting token",
			slog.String("tokenID", tokenID),
			slog.Any("error", err),
		)

		return false, nil
	}

	return n > 0, nil
}

func newMemoryTokenRevoker() *memoryTokenRevoker {
	return &memoryTokenRevoker{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (r *memoryTokenRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !expiresAt.After(now) {
		return nil
	}

	// Drop entries whose tokens expired on their own.
	for id, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, id)
		}
	}
	r.revoked[tokenID] = expiresAt

	return nil
}

func (r *memoryTokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.revoked[tokenID]

	return ok && exp.After(r.now()), nil
}
