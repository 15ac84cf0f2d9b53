package persistence

import (
	"context"
	"time"
)

// UserLockRepository manages lease locks on users stored in the database
type UserLockRepository interface {
	// AcquireLock takes the lease on the user for the holder identified by token
	// if it is free or expired. The lease expires after the given duration.
	//
	// Possible errors:
	// - ErrUserLocked: If user is already locked by another process
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, userID, token string, duration time.Duration) error

	// ReleaseLock releases the lease only while token still holds it.
	// Releasing a lease that expired or was taken over is not an error.
	ReleaseLock(ctx context.Context, userID, token string) error

	// CleanupExpiredLocks removes expired leases and returns how many were removed
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}

// UserLocker serializes Ledger mutations of one user across requests
type UserLocker interface {
	// Lock blocks until the user's lock is held, the lock timeout passes or ctx ends.
	// The returned release function must be called exactly once.
	//
	// Possible errors:
	// - ErrUserLocked: If the lock could not be obtained in time
	Lock(ctx context.Context, userID string) (release func(), err error)
}
