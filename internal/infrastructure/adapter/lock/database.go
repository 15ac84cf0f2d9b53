package lock

import (
	"context"
	"errors"
	"time"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
)

const (
	backendDatabase = "database"

	// DefaultPollInterval is the wait between two lease attempts
	DefaultPollInterval = 50 * time.Millisecond
)

// LeaseLocker serializes work per user across processes with lease rows in the database
type LeaseLocker struct {
	repo         persistence.UserLockRepository
	ids          core.IDGenerator
	timeout      time.Duration
	lease        time.Duration
	pollInterval time.Duration
	timeProvider core.TimeProvider
	metrics      core.Metrics
	logger       core.Logger
}

// NewLeaseLocker creates a database-backed locker. The lease outlives the
// wait timeout so a crashed holder frees the user on its own.
func NewLeaseLocker(
	repo persistence.UserLockRepository,
	ids core.IDGenerator,
	timeout, lease time.Duration,
	timeProvider core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) *LeaseLocker {
	if lease <= 0 {
		lease = 30 * time.Second
	}
	return &LeaseLocker{
		repo:         repo,
		ids:          ids,
		timeout:      timeout,
		lease:        lease,
		pollInterval: DefaultPollInterval,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

var _ persistence.UserLocker = (*LeaseLocker)(nil)

// Lock polls for the lease until it is granted or the timeout passes
func (l *LeaseLocker) Lock(ctx context.Context, userID string) (func(), error) {
	start := l.timeProvider.Now()
	deadline := start.Add(l.timeout)
	token := l.ids.NewID()

	for {
		err := l.repo.AcquireLock(ctx, userID, token, l.lease)
		if err == nil {
			break
		}
		if !errors.Is(err, errs.ErrUserLocked) {
			l.metrics.ObserveLock(backendDatabase, core.OutcomeFailure, l.timeProvider.Since(start).Seconds())
			return nil, err
		}
		if ctx.Err() != nil {
			l.metrics.ObserveLock(backendDatabase, core.OutcomeFailure, l.timeProvider.Since(start).Seconds())
			return nil, ctx.Err()
		}
		if !l.timeProvider.Now().Before(deadline) {
			l.metrics.ObserveLock(backendDatabase, core.OutcomeFailure, l.timeProvider.Since(start).Seconds())
			l.logger.Warn("Timed out waiting for user lease", map[string]any{
				"user_id": userID,
				"timeout": l.timeout.String(),
			})
			return nil, errs.ErrUserLocked
		}
		l.timeProvider.Sleep(core.Duration(l.pollInterval))
	}

	l.metrics.ObserveLock(backendDatabase, core.OutcomeSuccess, l.timeProvider.Since(start).Seconds())

	released := false
	return func() {
		if released {
			return
		}
		released = true
		// The request context may already be done; the lease must still go
		if err := l.repo.ReleaseLock(context.WithoutCancel(ctx), userID, token); err != nil {
			l.logger.Warn("Failed to release user lease, it will expire", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}, nil
}
