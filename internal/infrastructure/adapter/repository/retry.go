package repository

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: 25 * time.Millisecond,
		MaxInterval:   500 * time.Millisecond,
		JitterFactor:  0.2,
	}
}

// NoRetry runs an operation exactly once, as required inside an open transaction
func NoRetry() RetryConfig {
	return RetryConfig{MaxRetries: 1}
}

// RetryOnTransientError retries an operation while it fails with a transient database error
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	classifier *ErrorClassifier,
	logger coreport.Logger,
) error {
	attempts := max(config.MaxRetries, 1)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = operation()
		if err == nil || !classifier.IsTransientError(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	if attempts > 1 {
		logger.Error("All retry attempts failed", map[string]any{
			"attempts": attempts,
			"error":    err.Error(),
		})
	}
	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}
	return backoff
}
