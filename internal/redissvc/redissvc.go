package redissvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/inventory-backend/internal/config"
)

const (
	revokedKeyPrefix = "auth:revoked:"
	strikeKeyPrefix  = "auth:strikes:"
	// BanLogKey holds one JSON entry per lockout.
	BanLogKey = "auth:banlog"
)

// RedisService backs token revocation and login strikes so they are shared
// between instances.
type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

// Connect opens a client for cfg and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedisService(rdb), nil
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}

func (a *RedisService) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := a.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (a *RedisService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := a.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// AddStrike counts a failure for key. The counter is created together with
// its window expiry in one transaction, so it can never outlive the window.
func (a *RedisService) AddStrike(ctx context.Context, key string, window time.Duration) (int, error) {
	k := strikeKeyPrefix + key
	var incr *redis.IntCmd
	_, err := a.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, window)
		incr = pipe.Incr(ctx, k)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add strike: %w", err)
	}
	return int(incr.Val()), nil
}

func (a *RedisService) Strikes(ctx context.Context, key string) (int, error) {
	n, err := a.rdb.Get(ctx, strikeKeyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read strikes: %w", err)
	}
	return n, nil
}

func (a *RedisService) ResetStrikes(ctx context.Context, key string) error {
	return a.rdb.Del(ctx, strikeKeyPrefix+key).Err()
}

func (a *RedisService) AppendBanLog(ctx context.Context, entry []byte) error {
	return a.rdb.RPush(ctx, BanLogKey, entry).Err()
}

func (a *RedisService) BanLog(ctx context.Context) ([][]byte, error) {
	items, err := a.rdb.LRange(ctx, BanLogKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, 0, len(items))
	for _, item := range items {
		out = append(out, []byte(item))
	}
	return out, nil
}
