package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/photo-restoration/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/photo-restoration/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/photo-restoration/mocks/port/usecase"
)

func TestSchedulerRegister(t *testing.T) {
	s := NewScheduler(logger.NewNoopLogger())

	assert.NoError(t, s.Register(Job{Name: "ok", Schedule: "*/5 * * * * *", Run: func(context.Context) error { return nil }}))
	assert.Error(t, s.Register(Job{Name: "bad", Schedule: "not a schedule", Run: func(context.Context) error { return nil }}))
	assert.Error(t, s.Register(Job{Name: "empty", Schedule: "@every 1s"}))
	assert.Equal(t, []string{"ok"}, s.jobs)
}

func TestSchedulerRunsJobs(t *testing.T) {
	s := NewScheduler(logger.NewNoopLogger())

	ran := make(chan struct{}, 1)
	require.NoError(t, s.Register(Job{
		Name:     "tick",
		Schedule: "@every 1s",
		Run: func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		},
	}))

	s.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Stop(ctx)
	}()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestReconciliationJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Logs a sweep that did work", func(t *testing.T) {
		reconciler := usecasemocks.NewMockReconciliationUseCase(t)
		reconciler.EXPECT().Sweep(ctx).Return(&usecase.SweepResult{Resolved: 2, Pending: 1}, nil).Once()
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Info("Refund reconciliation sweep finished", mock.Anything).Once()

		job := ReconciliationJob("0 * * * * *", reconciler, log)

		assert.Equal(t, "refund_reconciliation", job.Name)
		assert.NoError(t, job.Run(ctx))
	})

	t.Run("Returns sweep errors", func(t *testing.T) {
		reconciler := usecasemocks.NewMockReconciliationUseCase(t)
		reconciler.EXPECT().Sweep(ctx).Return(nil, errors.New("db down")).Once()

		job := ReconciliationJob("0 * * * * *", reconciler, logger.NewNoopLogger())

		assert.EqualError(t, job.Run(ctx), "db down")
	})
}

func TestLockCleanupJob(t *testing.T) {
	ctx := context.Background()
	repo := persistencemocks.NewMockUserLockRepository(t)
	repo.EXPECT().CleanupExpiredLocks(ctx).Return(int64(3), nil).Once()

	job := LockCleanupJob("*/30 * * * * *", repo, logger.NewNoopLogger())

	assert.NoError(t, job.Run(ctx))
}

func TestPairs(t *testing.T) {
	assert.Equal(t, map[string]any{"entry": 1, "now": "x"}, pairs([]any{"entry", 1, "now", "x", "dangling"}))
}
