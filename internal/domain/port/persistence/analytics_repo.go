package persistence

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// AnalyticsRepository stores usage events
type AnalyticsRepository interface {
	Create(ctx context.Context, event *entity.AnalyticsEvent) error
}
