package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/logger"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	classifier := NewErrorClassifier()
	log := logger.NewNoopLogger()

	t.Run("Retries transient errors until success", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			if calls < 3 {
				return pgError(pgDeadlockDetected)
			}
			return nil
		}, classifier, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return pgError(pgSerializationFailure)
		}, classifier, log)

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent errors are returned at once", func(t *testing.T) {
		calls := 0
		permanent := errors.New("invalid input syntax")
		err := RetryOnTransientError(context.Background(), fastRetry(), func() error {
			calls++
			return permanent
		}, classifier, log)

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("No retry runs once", func(t *testing.T) {
		calls := 0
		_ = RetryOnTransientError(context.Background(), NoRetry(), func() error {
			calls++
			return pgError(pgDeadlockDetected)
		}, classifier, log)

		assert.Equal(t, 1, calls)
	})

	t.Run("Cancelled context stops the backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		slow := RetryConfig{MaxRetries: 5, RetryInterval: time.Hour}
		err := RetryOnTransientError(ctx, slow, func() error {
			return pgError(pgDeadlockDetected)
		}, classifier, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(5, config))

	config.JitterFactor = 0.5
	got := calculateBackoffWithJitter(0, config)
	assert.GreaterOrEqual(t, got, 10*time.Millisecond)
	assert.LessOrEqual(t, got, 15*time.Millisecond)
}
