package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"career-advisor/internal/config"
	"career-advisor/internal/domain/career"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	hitsKeyPrefix = "careers:hits:"

	warnRedisCallFailed = "redis call failed, counters may be incomplete"
)

// Redis keeps per-category recommendation counters. A nil client means Redis is
// disabled or was unreachable at startup; every call then becomes a no-op.
type Redis struct {
	client *redis.Client
	logger *zap.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.Enabled {
		return &Redis{logger: logger}
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, career hit counters disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return &Redis{logger: logger}
	}

	logger.Info("redis connected", zap.String("addr", addr))
	return &Redis{client: client, logger: logger}
}

// NewRedisWithClient wraps an existing client without pinging it.
func NewRedisWithClient(client *redis.Client, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn(warnRedisCallFailed, zap.Error(err))
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Increment(ctx context.Context, id career.CategoryID) error {
	if r.isUnavailable() {
		return nil
	}
	if err := r.client.Incr(ctx, hitsKey(id)).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Counts(ctx context.Context, ids []career.CategoryID) (map[career.CategoryID]int64, error) {
	out := make(map[career.CategoryID]int64, len(ids))
	if r.isUnavailable() || len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, hitsKey(id))
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return nil, err
	}

	for i, v := range vals {
		n, err := parseCount(v)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", keys[i], err)
		}
		out[ids[i]] = n
	}
	return out, nil
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func hitsKey(id career.CategoryID) string {
	return hitsKeyPrefix + string(id)
}

func parseCount(v interface{}) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
