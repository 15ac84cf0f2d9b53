package lock

import (
	"context"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
)

const backendLocal = "local"

// userSlot is a one-token semaphore shared by every waiter of one user
type userSlot struct {
	sem  chan struct{}
	refs int
}

// LocalLocker serializes work per user inside one process
type LocalLocker struct {
	timeout      time.Duration
	timeProvider core.TimeProvider
	metrics      core.Metrics
	logger       core.Logger

	mu     sync.Mutex
	slots  map[string]*userSlot
	closed bool
	held   sync.WaitGroup
}

// NewLocalLocker creates an in-process locker; a zero timeout waits until ctx ends
func NewLocalLocker(timeout time.Duration, timeProvider core.TimeProvider, metrics core.Metrics, logger core.Logger) *LocalLocker {
	return &LocalLocker{
		timeout:      timeout,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		slots:        make(map[string]*userSlot),
	}
}

var _ persistence.UserLocker = (*LocalLocker)(nil)

// Lock waits for the user's slot
func (l *LocalLocker) Lock(ctx context.Context, userID string) (func(), error) {
	start := l.timeProvider.Now()

	slot, err := l.acquireSlot(userID)
	if err != nil {
		return nil, err
	}

	waitCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = l.timeProvider.WithTimeout(ctx, core.Duration(l.timeout))
		defer cancel()
	}

	select {
	case slot.sem <- struct{}{}:
	case <-waitCtx.Done():
		l.releaseSlot(userID, slot)
		l.held.Done()
		l.metrics.ObserveLock(backendLocal, core.OutcomeFailure, l.timeProvider.Since(start).Seconds())
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		l.logger.Warn("Timed out waiting for user lock", map[string]any{
			"user_id": userID,
			"timeout": l.timeout.String(),
		})
		return nil, errs.ErrUserLocked
	}

	l.metrics.ObserveLock(backendLocal, core.OutcomeSuccess, l.timeProvider.Since(start).Seconds())

	var once sync.Once
	return func() {
		once.Do(func() {
			<-slot.sem
			l.releaseSlot(userID, slot)
			l.held.Done()
		})
	}, nil
}

func (l *LocalLocker) acquireSlot(userID string) (*userSlot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, errs.ErrInternalServer
	}

	slot, ok := l.slots[userID]
	if !ok {
		slot = &userSlot{sem: make(chan struct{}, 1)}
		l.slots[userID] = slot
	}
	slot.refs++
	l.held.Add(1)
	return slot, nil
}

// releaseSlot drops one reference and forgets idle users
func (l *LocalLocker) releaseSlot(userID string, slot *userSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, userID)
	}
}

// Active returns the number of users with a holder or a waiter
func (l *LocalLocker) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

// Shutdown refuses new lock requests and waits for holders and waiters to finish
func (l *LocalLocker) Shutdown() {
	l.logger.Info("Shutting down local user locker", nil)

	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	l.held.Wait()
	l.logger.Info("Local user locker shut down successfully", nil)
}
