// Package cache keeps job search results in Redis. Every operation turns into
// a miss or a no-op while Redis is unavailable, so callers never depend on it.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gartstein/techjobs/internal/techjobs/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "techjobs:jobs:"

// DefaultTTL applies when Config.TTL is zero.
const DefaultTTL = 5 * time.Minute

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	warnedUnavailable atomic.Bool
}

// NewRedis connects to cfg.Addr. An empty address, or a server that does not
// answer a ping, yields a cache that always misses.
func NewRedis(cfg Config, logger *zap.Logger) *Redis {
	logger = logger.Named("job_cache")
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if cfg.Addr == "" {
		logger.Info("redis not configured, job cache disabled")
		return &Redis{ttl: ttl, logger: logger}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing job cache", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return &Redis{ttl: ttl, logger: logger}
	}

	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) GetJobs(ctx context.Context, key string) ([]models.Job, bool) {
	if !r.Available() {
		return nil, false
	}

	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.warnOnce(err)
		}
		return nil, false
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		r.logger.Warn("dropping unreadable cache entry", zap.String("key", key), zap.Error(err))
		_ = r.client.Del(ctx, keyPrefix+key).Err()
		return nil, false
	}
	return jobs, true
}

func (r *Redis) SetJobs(ctx context.Context, key string, jobs []models.Job) {
	if !r.Available() {
		return
	}

	data, err := json.Marshal(jobs)
	if err != nil {
		r.logger.Warn("failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, keyPrefix+key, data, r.ttl).Err(); err != nil {
		r.warnOnce(err)
	}
}

// Invalidate drops every cached search result.
func (r *Redis) Invalidate(ctx context.Context) {
	if !r.Available() {
		return
	}

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		r.warnOnce(err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.warnOnce(err)
	}
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) warnOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis unavailable, bypassing job cache", zap.Error(err))
	}
}
