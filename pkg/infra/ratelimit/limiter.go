package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "inclusionguard:ratelimit"

type Config struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

func (c Config) Enabled() bool {
	return c.Limit > 0 && c.Window > 0
}

// Decision describes the state of one key after a call to Allow.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int64
	ResetAt   time.Time
}

//go:generate mockery --name=Limiter --dir=. --output=./mocks --filename=limiter_mock.go --case=underscore --with-expecter
type Limiter interface {
	Allow(ctx context.Context, scope, id string) (*Decision, error)
}

type Option func(*redisLimiter)

func WithTimeProvider(now func() time.Time) Option {
	return func(l *redisLimiter) {
		l.timeProvider = now
	}
}

func WithUUIDProvider(next func() uuid.UUID) Option {
	return func(l *redisLimiter) {
		l.uuidProvider = next
	}
}

type redisLimiter struct {
	redis        *redis.Client
	cfg          Config
	timeProvider func() time.Time
	uuidProvider func() uuid.UUID
}

// NewRedisLimiter returns a sliding window limiter backed by a sorted set
// per key.
func NewRedisLimiter(client *redis.Client, cfg Config, opts ...Option) Limiter {
	l := &redisLimiter{
		redis:        client,
		cfg:          cfg,
		timeProvider: time.Now,
		uuidProvider: uuid.New,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func Key(scope, id string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, scope, id)
}

func (l *redisLimiter) Allow(ctx context.Context, scope, id string) (*Decision, error) {
	key := Key(scope, id)
	now := l.timeProvider()
	windowStart := now.Add(-l.cfg.Window).Unix()

	currentCount, err := l.redis.ZCount(ctx, key,
		strconv.FormatInt(windowStart, 10),
		strconv.FormatInt(now.Unix(), 10)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get count for %s: %w", key, err)
	}

	decision := &Decision{
		Limit:   l.cfg.Limit,
		ResetAt: now.Add(l.cfg.Window),
	}
	if currentCount >= int64(l.cfg.Limit) {
		return decision, nil
	}

	member := fmt.Sprintf("%d:%s", now.Unix(), l.uuidProvider().String())
	pipe := l.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(now.Unix()),
		Member: member,
	})
	pipe.Expire(ctx, key, l.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	decision.Allowed = true
	decision.Remaining = int64(l.cfg.Limit) - currentCount - 1
	return decision, nil
}
