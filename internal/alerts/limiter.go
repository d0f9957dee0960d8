package alerts

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"

	"github.com/feral-file/founder-scout/internal/adapter"
)

// Limiter blocks until one more delivery is allowed
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewLocalLimiter limits deliveries within this process
func NewLocalLimiter(perSecond float64) Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}

type redisLimiter struct {
	limiter adapter.RedisRateLimiter
	key     string
	limit   redis_rate.Limit
	clock   adapter.Clock
}

// NewRedisLimiter limits deliveries across every process sharing the redis key
func NewRedisLimiter(limiter adapter.RedisRateLimiter, key string, perSecond float64, clock adapter.Clock) Limiter {
	return &redisLimiter{
		limiter: limiter,
		key:     key,
		limit:   redisLimit(perSecond),
		clock:   clock,
	}
}

// redisLimit converts a per-second rate into a whole-number redis_rate limit
func redisLimit(perSecond float64) redis_rate.Limit {
	if perSecond >= 1 {
		return redis_rate.PerSecond(int(math.Round(perSecond)))
	}
	perMinute := int(math.Round(perSecond * 60))
	if perMinute < 1 {
		perMinute = 1
	}
	return redis_rate.PerMinute(perMinute)
}

func (l *redisLimiter) Wait(ctx context.Context) error {
	for {
		res, err := l.limiter.Allow(ctx, l.key, l.limit)
		if err != nil {
			return fmt.Errorf("failed to check rate limit: %w", err)
		}
		if res.Allowed > 0 {
			return nil
		}

		wait := res.RetryAfter
		if wait <= 0 {
			wait = 100 * time.Millisecond
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(wait):
		}
	}
}
