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

// PurchaseRepository stores applied purchases
type PurchaseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.PurchaseRepository = (*PurchaseRepository)(nil)

// Create inserts a purchase row
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	if err := r.db.WithContext(ctx).Create(model.PurchaseFromEntity(purchase)).Error; err != nil {
		r.logger.Error("Failed to record purchase", map[string]any{
			"purchase_id": purchase.ID,
			"user_id":     purchase.UserID,
			"product_id":  purchase.ProductID,
			"error":       err.Error(),
		})
		return r.errorClassifier.MapError(err, errs.ErrNotFound)
	}
	return nil
}

// ListByUser returns a user's purchases, newest first
func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Purchase, error) {
	var rows []model.Purchase
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrNotFound)
	}

	purchases := make([]*entity.Purchase, 0, len(rows))
	for i := range rows {
		purchases = append(purchases, rows[i].ToEntity())
	}
	return purchases, nil
}
