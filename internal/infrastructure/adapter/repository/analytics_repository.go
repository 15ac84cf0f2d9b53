package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/model"
)

// AnalyticsRepository stores analytics events
type AnalyticsRepository struct {
	db              *gorm.DB
	errorClassifier *ErrorClassifier
}

// NewAnalyticsRepository creates a new AnalyticsRepository instance
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db, errorClassifier: NewErrorClassifier()}
}

var _ persistence.AnalyticsRepository = (*AnalyticsRepository)(nil)

// Create inserts an event
func (r *AnalyticsRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	err := r.db.WithContext(ctx).Create(model.AnalyticsEventFromEntity(event)).Error
	return r.errorClassifier.MapError(err, errs.ErrNotFound)
}
