package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/metrics"
	realtime "github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/time"
)

func newLocalLocker(timeout time.Duration) *LocalLocker {
	return NewLocalLocker(timeout, realtime.NewRealTimeProvider(), metrics.NewNoopMetrics(), logger.NewNoopLogger())
}

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("Serializes holders of the same user", func(t *testing.T) {
		locker := newLocalLocker(5 * time.Second)

		var inside, maxInside int32
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := locker.Lock(ctx, "device-1")
				require.NoError(t, err)
				defer release()

				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), maxInside)
		assert.Equal(t, 0, locker.Active())
	})

	t.Run("Different users do not block each other", func(t *testing.T) {
		locker := newLocalLocker(50 * time.Millisecond)

		releaseA, err := locker.Lock(ctx, "a")
		require.NoError(t, err)
		defer releaseA()

		releaseB, err := locker.Lock(ctx, "b")
		require.NoError(t, err)
		releaseB()
	})

	t.Run("Times out with ErrUserLocked", func(t *testing.T) {
		locker := newLocalLocker(20 * time.Millisecond)

		release, err := locker.Lock(ctx, "device-1")
		require.NoError(t, err)

		_, err = locker.Lock(ctx, "device-1")
		assert.ErrorIs(t, err, errs.ErrUserLocked)

		release()
		release() // idempotent
		assert.Equal(t, 0, locker.Active())
	})

	t.Run("Canceled context wins over the timeout", func(t *testing.T) {
		locker := newLocalLocker(time.Second)

		release, err := locker.Lock(ctx, "device-1")
		require.NoError(t, err)
		defer release()

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = locker.Lock(canceled, "device-1")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Shutdown rejects new requests", func(t *testing.T) {
		locker := newLocalLocker(time.Second)

		release, err := locker.Lock(ctx, "device-1")
		require.NoError(t, err)
		go func() {
			time.Sleep(10 * time.Millisecond)
			release()
		}()

		locker.Shutdown()

		_, err = locker.Lock(ctx, "device-1")
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}

func TestTries(t *testing.T) {
	assert.Equal(t, 1, tries(10*time.Millisecond))
	assert.Equal(t, 160, tries(8*time.Second))
}
