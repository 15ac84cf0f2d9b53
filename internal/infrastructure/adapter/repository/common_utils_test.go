package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

func pgError(code string) error {
	return fmt.Errorf("query failed: %w", &pgconn.PgError{Code: code, Message: "postgres says no"})
}

func TestErrorClassifierClassify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unique violation", err: pgError(pgUniqueViolation), want: DuplicateKeyError},
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, want: DuplicateKeyError},
		{name: "serialization failure", err: pgError(pgSerializationFailure), want: LockError},
		{name: "deadlock", err: pgError(pgDeadlockDetected), want: LockError},
		{name: "lock not available", err: pgError(pgLockNotAvailable), want: LockError},
		{name: "connection exception", err: pgError("08006"), want: ConnectionError},
		{name: "admin shutdown", err: pgError(pgAdminShutdown), want: ConnectionError},
		{name: "connection refused text", err: errors.New("dial tcp: connection refused"), want: ConnectionError},
		{name: "query canceled", err: pgError(pgQueryCanceled), want: TransientError},
		{name: "check violation", err: pgError(pgCheckViolation), want: ConstraintError},
		{name: "foreign key violation", err: pgError(pgForeignKeyViolation), want: ConstraintError},
		{name: "unknown", err: errors.New("syntax error at or near"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifierIsTransientError(t *testing.T) {
	c := NewErrorClassifier()

	assert.True(t, c.IsTransientError(pgError(pgDeadlockDetected)))
	assert.True(t, c.IsTransientError(pgError("08001")))
	assert.False(t, c.IsTransientError(context.Canceled))
	assert.False(t, c.IsTransientError(pgError(pgUniqueViolation)))
	assert.False(t, c.IsTransientError(nil))
}

func TestErrorClassifierMapError(t *testing.T) {
	c := NewErrorClassifier()

	t.Run("Record not found becomes the given error", func(t *testing.T) {
		assert.ErrorIs(t, c.MapError(gorm.ErrRecordNotFound, errs.ErrUserNotFound), errs.ErrUserNotFound)
	})

	t.Run("Context errors pass through", func(t *testing.T) {
		assert.ErrorIs(t, c.MapError(context.DeadlineExceeded, errs.ErrNotFound), context.DeadlineExceeded)
	})

	t.Run("Lock errors become user locked", func(t *testing.T) {
		assert.ErrorIs(t, c.MapError(pgError(pgSerializationFailure), errs.ErrNotFound), errs.ErrUserLocked)
	})

	t.Run("Constraint errors become constraint violations", func(t *testing.T) {
		err := c.MapError(pgError(pgUniqueViolation), errs.ErrNotFound)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.Contains(t, err.Error(), "postgres says no")
	})

	t.Run("Everything else is a database error", func(t *testing.T) {
		assert.ErrorIs(t, c.MapError(errors.New("bad things"), errs.ErrNotFound), errs.ErrDatabaseConnection)
	})

	t.Run("Nil stays nil", func(t *testing.T) {
		assert.NoError(t, c.MapError(nil, errs.ErrNotFound))
	})
}
