package worker

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
)

// ReconciliationJob re-applies refunds that failed during compensation
func ReconciliationJob(schedule string, reconciler usecase.ReconciliationUseCase, logger core.Logger) Job {
	return Job{
		Name:     "refund_reconciliation",
		Schedule: schedule,
		Timeout:  time.Minute,
		Run: func(ctx context.Context) error {
			result, err := reconciler.Sweep(ctx)
			if err != nil {
				return err
			}
			if result.Resolved+result.Failed+result.Abandoned > 0 {
				logger.Info("Refund reconciliation sweep finished", map[string]any{
					"resolved":  result.Resolved,
					"failed":    result.Failed,
					"abandoned": result.Abandoned,
					"pending":   result.Pending,
				})
			}
			return nil
		},
	}
}

// LockCleanupJob deletes expired user lease rows
func LockCleanupJob(schedule string, repo persistence.UserLockRepository, logger core.Logger) Job {
	return Job{
		Name:     "user_lock_cleanup",
		Schedule: schedule,
		Timeout:  30 * time.Second,
		Run: func(ctx context.Context) error {
			removed, err := repo.CleanupExpiredLocks(ctx)
			if err != nil {
				return err
			}
			if removed > 0 {
				logger.Debug("Expired user locks removed", map[string]any{"count": removed})
			}
			return nil
		},
	}
}
