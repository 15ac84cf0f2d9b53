package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// Postgres SQLSTATE codes the classifier knows
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgNotNullViolation     = "23502"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgQueryCanceled        = "57014"
	pgAdminShutdown        = "57P01"
	pgConnectionException  = "08"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

// sqlState returns the Postgres error code, or "" for non-Postgres errors
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == pgUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "lock timeout")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	code := sqlState(err)
	if strings.HasPrefix(code, pgConnectionException) || code == pgAdminShutdown {
		return true
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	return c.IsLockError(err) || c.IsConnectionError(err) || sqlState(err) == pgQueryCanceled
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
		return true
	}
	return c.IsDuplicateKeyError(err) || strings.Contains(err.Error(), "violates")
}

// MapError turns a gorm error into a domain error; notFound replaces gorm.ErrRecordNotFound
func (c *ErrorClassifier) MapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch c.Classify(err) {
	case LockError:
		return errs.ErrUserLocked
	case DuplicateKeyError, ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}
