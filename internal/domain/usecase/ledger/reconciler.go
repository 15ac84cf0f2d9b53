package ledger

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
)

// Reconciliation defaults
const (
	DefaultReconcileBatchSize   = 50
	DefaultReconcileMaxAttempts = 10
)

// Reconciler persists failed refunds and retries them from a scheduled sweep
type Reconciler struct {
	ledger       usecase.LedgerUseCase
	repo         persistence.ReconciliationRepository
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
	logger       coreport.Logger
	batchSize    int
	maxAttempts  int
}

var _ usecase.ReconciliationUseCase = (*Reconciler)(nil)

// NewReconciler creates a new reconciler
func NewReconciler(
	ledger usecase.LedgerUseCase,
	repo persistence.ReconciliationRepository,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		ledger:       ledger,
		repo:         repo,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		batchSize:    DefaultReconcileBatchSize,
		maxAttempts:  DefaultReconcileMaxAttempts,
	}
}

// WithBatchSize sets how many pending rows one sweep loads
func (r *Reconciler) WithBatchSize(size int) *Reconciler {
	if size > 0 {
		r.batchSize = size
	}
	return r
}

// WithMaxAttempts sets after how many failed retries a row is abandoned
func (r *Reconciler) WithMaxAttempts(attempts int) *Reconciler {
	if attempts > 0 {
		r.maxAttempts = attempts
	}
	return r
}

// Record stores a pending reconciliation for a charge whose refund failed
func (r *Reconciler) Record(
	ctx context.Context,
	charge *entity.Charge,
	mode entity.Mode,
	reason string,
	refundErr error,
) (*entity.RefundReconciliation, error) {
	rec := &entity.RefundReconciliation{
		ID:        r.idGenerator.NewID(),
		UserID:    charge.UserID,
		Tier:      charge.Tier,
		Source:    charge.Source,
		Mode:      mode,
		Reason:    reason,
		Status:    entity.ReconciliationPending,
		CreatedAt: r.timeProvider.Now(),
	}
	if refundErr != nil {
		rec.LastError = refundErr.Error()
	}

	if err := r.repo.Create(ctx, rec); err != nil {
		r.logger.Error("Failed to persist refund reconciliation", map[string]any{
			"userId": charge.UserID,
			"tier":   charge.Tier.String(),
			"reason": reason,
			"error":  err.Error(),
		})
		return nil, err
	}

	r.logger.Warn("Refund queued for reconciliation", map[string]any{
		"reconciliationId": rec.ID,
		"userId":           charge.UserID,
		"tier":             charge.Tier.String(),
		"source":           string(charge.Source),
	})
	return rec, nil
}

// Sweep retries one batch of pending refunds
func (r *Reconciler) Sweep(ctx context.Context) (*usecase.SweepResult, error) {
	pending, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("Failed to load pending reconciliations", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	result := &usecase.SweepResult{}
	for _, rec := range pending {
		if ctx.Err() != nil {
			break
		}

		if _, refundErr := r.ledger.Refund(ctx, rec.Charge()); refundErr != nil {
			rec.RecordFailure(refundErr, r.maxAttempts, r.timeProvider.Now())
			if rec.Status == entity.ReconciliationAbandoned {
				result.Abandoned++
				r.logger.Error("Refund reconciliation abandoned", map[string]any{
					"reconciliationId": rec.ID,
					"userId":           rec.UserID,
					"attempts":         rec.Attempts,
					"error":            refundErr.Error(),
				})
			} else {
				result.Failed++
			}
		} else {
			rec.Attempts++
			rec.MarkResolved(r.timeProvider.Now())
			result.Resolved++
		}

		if err := r.repo.Update(ctx, rec); err != nil {
			// A resolved row that stays pending would be refunded twice
			r.logger.Error("Failed to update reconciliation", map[string]any{
				"reconciliationId": rec.ID,
				"status":           string(rec.Status),
				"error":            err.Error(),
			})
			return result, err
		}
	}

	count, err := r.repo.CountPending(ctx)
	if err != nil {
		return result, err
	}
	result.Pending = count
	r.metrics.SetPendingReconciliations(int(count))

	if result.Resolved+result.Failed+result.Abandoned > 0 {
		r.logger.Info("Reconciliation sweep finished", map[string]any{
			"resolved":  result.Resolved,
			"failed":    result.Failed,
			"abandoned": result.Abandoned,
			"pending":   result.Pending,
		})
	}
	return result, nil
}
