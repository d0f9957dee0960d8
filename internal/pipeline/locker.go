package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/founder-scout/internal/adapter"
	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/logger"
)

// Locker enforces a single pipeline writer
//
//go:generate mockgen -source=locker.go -destination=../mocks/locker.go -package=mocks -mock_names=Locker=MockLocker
type Locker interface {
	// Acquire takes the lock and returns the owner token.
	// It returns domain.ErrPipelineLocked when another run holds it.
	Acquire(ctx context.Context) (string, error)
	// Release frees the lock if token still owns it
	Release(ctx context.Context, token string) error
}

type redisLocker struct {
	client adapter.RedisClient
	key    string
	ttl    time.Duration
	clock  adapter.Clock
}

// NewRedisLocker creates a lock shared by every process using the same redis key.
// The TTL bounds how long a crashed run can block the next one.
func NewRedisLocker(client adapter.RedisClient, key string, ttl time.Duration, clock adapter.Clock) Locker {
	return &redisLocker{
		client: client,
		key:    key,
		ttl:    ttl,
		clock:  clock,
	}
}

func (l *redisLocker) Acquire(ctx context.Context) (string, error) {
	token := ulid.MustNewDefault(l.clock.Now()).String()
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl)
	if err != nil {
		return "", fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !ok {
		return "", domain.ErrPipelineLocked
	}
	return token, nil
}

func (l *redisLocker) Release(ctx context.Context, token string) error {
	released, err := l.client.CompareAndDelete(ctx, l.key, token)
	if err != nil {
		return fmt.Errorf("failed to release run lock: %w", err)
	}
	if !released {
		logger.WarnCtx(ctx, "Run lock expired before release", zap.String("key", l.key), zap.Duration("ttl", l.ttl))
	}
	return nil
}

type localLocker struct {
	mu    sync.Mutex
	token string
	clock adapter.Clock
}

// NewLocalLocker creates a lock that only guards runs within this process
func NewLocalLocker(clock adapter.Clock) Locker {
	return &localLocker{clock: clock}
}

func (l *localLocker) Acquire(_ context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.token != "" {
		return "", domain.ErrPipelineLocked
	}
	l.token = ulid.MustNewDefault(l.clock.Now()).String()
	return l.token, nil
}

func (l *localLocker) Release(_ context.Context, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.token == token {
		l.token = ""
	}
	return nil
}
