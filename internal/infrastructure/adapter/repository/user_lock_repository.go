package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/model"
)

// UserLockRepository implements user lease locks using GORM
type UserLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserLockRepository creates a new UserLockRepository instance
func NewUserLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserLockRepository {
	return &UserLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.UserLockRepository = (*UserLockRepository)(nil)

// AcquireLock takes the lease in a single upsert. The update branch only fires for an
// expired lease, so zero affected rows means somebody else holds it.
func (r *UserLockRepository) AcquireLock(ctx context.Context, userID, token string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO user_locks (user_id, token, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET token = EXCLUDED.token,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE user_locks.expires_at <= ?`,
		userID, token, now, expiresAt, now, now,
		now,
	)

	if result.Error != nil {
		if errors.Is(result.Error, context.Canceled) || errors.Is(result.Error, context.DeadlineExceeded) {
			return result.Error
		}
		r.logger.Error("Database error acquiring lock", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.MapError(result.Error, errs.ErrNotFound)
	}

	if result.RowsAffected == 0 {
		return errs.ErrUserLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"user_id":    userID,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock deletes the lease held by token. A lease that expired, was cleaned up
// or was taken over by another holder is left alone.
func (r *UserLockRepository) ReleaseLock(ctx context.Context, userID, token string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&model.UserLock{})
	if result.Error != nil {
		// The lease expires on its own
		r.logger.Warn("Failed to release lock", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return r.errorClassifier.MapError(result.Error, errs.ErrNotFound)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Lease no longer held by this holder", map[string]any{"user_id": userID})
	}
	return nil
}

// CleanupExpiredLocks removes all expired leases
func (r *UserLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", r.timeProvider.Now()).Delete(&model.UserLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, r.errorClassifier.MapError(result.Error, errs.ErrNotFound)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired locks removed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
