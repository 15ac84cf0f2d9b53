package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/model"
)

// ReconciliationRepository stores refunds that are waiting to be re-applied
type ReconciliationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReconciliationRepository creates a new ReconciliationRepository instance
func NewReconciliationRepository(db *gorm.DB, logger coreport.Logger) *ReconciliationRepository {
	return &ReconciliationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.ReconciliationRepository = (*ReconciliationRepository)(nil)

// Create inserts a pending reconciliation
func (r *ReconciliationRepository) Create(ctx context.Context, rec *entity.RefundReconciliation) error {
	if err := r.db.WithContext(ctx).Create(model.RefundReconciliationFromEntity(rec)).Error; err != nil {
		r.logger.Error("Failed to persist refund reconciliation", map[string]any{
			"reconciliation_id": rec.ID,
			"user_id":           rec.UserID,
			"error":             err.Error(),
		})
		return r.errorClassifier.MapError(err, errs.ErrNotFound)
	}
	return nil
}

// ListPending returns the oldest pending reconciliations
func (r *ReconciliationRepository) ListPending(ctx context.Context, limit int) ([]*entity.RefundReconciliation, error) {
	var rows []model.RefundReconciliation
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entity.ReconciliationPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrNotFound)
	}

	recs := make([]*entity.RefundReconciliation, 0, len(rows))
	for i := range rows {
		recs = append(recs, rows[i].ToEntity())
	}
	return recs, nil
}

// CountPending returns the size of the pending backlog
func (r *ReconciliationRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.RefundReconciliation{}).
		Where("status = ?", string(entity.ReconciliationPending)).
		Count(&count).Error
	return count, r.errorClassifier.MapError(err, errs.ErrNotFound)
}

// Update stores the outcome of a retry
func (r *ReconciliationRepository) Update(ctx context.Context, rec *entity.RefundReconciliation) error {
	result := r.db.WithContext(ctx).
		Model(&model.RefundReconciliation{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"status":      string(rec.Status),
			"attempts":    rec.Attempts,
			"last_error":  rec.LastError,
			"resolved_at": rec.ResolvedAt,
		})
	if result.Error != nil {
		return r.errorClassifier.MapError(result.Error, errs.ErrNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
