package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	retry           RetryConfig
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, retry RetryConfig) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		retry:           retry,
	}
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// mutationError carries an error returned by the caller's mutation through the gorm transaction
type mutationError struct {
	err error
}

func (e *mutationError) Error() string { return e.err.Error() }

func (e *mutationError) Unwrap() error { return e.err }

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var row model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}
	return row.ToEntity(), nil
}

// GetOrCreate returns the user, inserting an empty one on first sight
func (r *UserRepository) GetOrCreate(ctx context.Context, id string) (*entity.User, error) {
	if err := entity.ValidateUserID(id); err != nil {
		return nil, err
	}

	var user *entity.User
	err := RetryOnTransientError(ctx, r.retry, func() error {
		row, err := r.findOrInsert(r.db.WithContext(ctx), id, false)
		if err != nil {
			return err
		}
		user = row.ToEntity()
		return nil
	}, r.errorClassifier, r.logger)
	if err != nil {
		return nil, r.handleDatabaseError("getting or creating user", err, id)
	}
	return user, nil
}

// Mutate runs the mutation on the user row under SELECT ... FOR UPDATE and persists the result.
// The user is created first when missing. Errors returned by the mutation abort the write and are returned unchanged.
func (r *UserRepository) Mutate(ctx context.Context, id string, mutation persistence.UserMutation) (*entity.User, error) {
	if err := entity.ValidateUserID(id); err != nil {
		return nil, err
	}

	var user *entity.User
	err := RetryOnTransientError(ctx, r.retry, func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			row, err := r.findOrInsert(tx, id, true)
			if err != nil {
				return err
			}

			candidate := row.ToEntity()
			if err := mutation(candidate); err != nil {
				return &mutationError{err: err}
			}
			candidate.UpdatedAt = r.timeProvider.Now()

			if err := tx.Save(model.UserFromEntity(candidate)).Error; err != nil {
				return err
			}
			user = candidate
			return nil
		})
	}, r.errorClassifier, r.logger)

	if err != nil {
		var mutErr *mutationError
		if errors.As(err, &mutErr) {
			return nil, mutErr.err
		}
		return nil, r.handleDatabaseError("mutating user", err, id)
	}

	r.logger.Debug("User mutated", map[string]any{
		"user_id":          id,
		"standard_credits": user.StandardCredits,
		"hd_credits":       user.HDCredits,
		"daily_standard":   user.DailyStandardUsed,
		"daily_hd":         user.DailyHDUsed,
	})
	return user, nil
}

// findOrInsert loads the row, inserting it first if needed; lock adds FOR UPDATE
func (r *UserRepository) findOrInsert(db *gorm.DB, id string, lock bool) (*model.User, error) {
	query := func() (*model.User, error) {
		q := db
		if lock {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var row model.User
		if err := q.Where("id = ?", id).Take(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}

	row, err := query()
	if err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
		return row, err
	}

	// Concurrent first requests race on the insert; the loser reads the winner's row
	fresh := model.NewUser(id, r.timeProvider.Now())
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(fresh).Error; err != nil {
		return nil, err
	}
	r.logger.Info("User created", map[string]any{"user_id": id})

	return query()
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	mapped := r.errorClassifier.MapError(err, errs.ErrUserNotFound)
	switch {
	case errors.Is(mapped, errs.ErrUserNotFound):
		r.logger.Debug("User not found", map[string]any{"user_id": userID})
	case errors.Is(mapped, errs.ErrUserLocked):
		r.logger.Warn("User is locked by another transaction", map[string]any{
			"user_id":   userID,
			"operation": operation,
			"error":     err.Error(),
		})
	default:
		r.logger.Error("Database error when "+operation, map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return mapped
}
