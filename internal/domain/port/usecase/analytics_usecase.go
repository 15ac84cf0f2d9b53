package usecase

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// TrackRequest is a client reported analytics event
type TrackRequest struct {
	UserID     string
	EventType  string
	EventData  map[string]any
	Platform   string
	AppVersion string
}

// AnalyticsUseCase records usage events
type AnalyticsUseCase interface {
	// Track stores an event, defaulting platform and app version
	Track(ctx context.Context, req TrackRequest) (*entity.AnalyticsEvent, error)
}
