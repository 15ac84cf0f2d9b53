package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
)

const (
	backendRedis = "redis"

	// KeyPrefix namespaces the per-user mutexes in Redis
	KeyPrefix = "photo:user-lock:"
)

// mutexFactory is the part of *redsync.Redsync the locker needs
type mutexFactory interface {
	NewMutex(name string, options ...redsync.Option) *redsync.Mutex
}

// RedisLocker serializes work per user across processes with a redsync mutex
type RedisLocker struct {
	rs           mutexFactory
	timeout      time.Duration
	timeProvider core.TimeProvider
	metrics      core.Metrics
	logger       core.Logger
}

// NewRedisLocker creates a redsync-backed locker on the given client
func NewRedisLocker(
	client *redis.Client,
	timeout time.Duration,
	timeProvider core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) *RedisLocker {
	return &RedisLocker{
		rs:           redsync.New(goredis.NewPool(client)),
		timeout:      timeout,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

var _ persistence.UserLocker = (*RedisLocker)(nil)

// Lock acquires photo:user-lock:<userID>; the mutex expires after the lock timeout
func (l *RedisLocker) Lock(ctx context.Context, userID string) (func(), error) {
	start := l.timeProvider.Now()
	expiry := l.timeout
	if expiry <= 0 {
		expiry = 8 * time.Second
	}

	mutex := l.rs.NewMutex(KeyPrefix+userID,
		redsync.WithExpiry(expiry),
		redsync.WithTries(tries(expiry)),
		redsync.WithRetryDelay(DefaultPollInterval),
	)

	if err := mutex.LockContext(ctx); err != nil {
		l.metrics.ObserveLock(backendRedis, core.OutcomeFailure, l.timeProvider.Since(start).Seconds())
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
			l.logger.Warn("User mutex is held elsewhere", map[string]any{"user_id": userID})
			return nil, errs.ErrUserLocked
		}

		l.logger.Error("Failed to acquire user mutex", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	l.metrics.ObserveLock(backendRedis, core.OutcomeSuccess, l.timeProvider.Since(start).Seconds())

	return func() {
		ok, err := mutex.UnlockContext(context.WithoutCancel(ctx))
		if err != nil || !ok {
			l.logger.Warn("Failed to release user mutex, it will expire", map[string]any{
				"user_id": userID,
				"error":   errString(err),
			})
		}
	}, nil
}

// tries spreads lock attempts over the expiry window
func tries(expiry time.Duration) int {
	n := int(expiry / DefaultPollInterval)
	if n < 1 {
		return 1
	}
	return n
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
