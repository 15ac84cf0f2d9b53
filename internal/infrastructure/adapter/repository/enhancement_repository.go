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

// EnhancementRepository stores the append-only enhancement history
type EnhancementRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEnhancementRepository creates a new EnhancementRepository instance
func NewEnhancementRepository(db *gorm.DB, logger coreport.Logger) *EnhancementRepository {
	return &EnhancementRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.EnhancementRepository = (*EnhancementRepository)(nil)

// Create inserts an enhancement record
func (r *EnhancementRepository) Create(ctx context.Context, enhancement *entity.Enhancement) error {
	if err := r.db.WithContext(ctx).Create(model.EnhancementFromEntity(enhancement)).Error; err != nil {
		r.logger.Error("Failed to record enhancement", map[string]any{
			"enhancement_id": enhancement.ID,
			"user_id":        enhancement.UserID,
			"error":          err.Error(),
		})
		return r.errorClassifier.MapError(err, errs.ErrNotFound)
	}
	return nil
}

// ListByUser returns one page of a user's enhancements, newest first, with the total count
func (r *EnhancementRepository) ListByUser(ctx context.Context, userID string, limit, offset int) (*entity.EnhancementPage, error) {
	db := r.db.WithContext(ctx).Model(&model.Enhancement{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrNotFound)
	}

	var rows []model.Enhancement
	err := db.Order("created_at DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrNotFound)
	}

	items := make([]*entity.Enhancement, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToEntity())
	}
	return &entity.EnhancementPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}
