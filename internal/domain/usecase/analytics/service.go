package analytics

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
)

// MaxEventTypeLength bounds the event type column
const MaxEventTypeLength = 100

// Service records analytics events
type Service struct {
	repo         persistence.AnalyticsRepository
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AnalyticsUseCase = (*Service)(nil)

// NewService creates a new analytics service
func NewService(
	repo persistence.AnalyticsRepository,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:         repo,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Track validates and stores one event
func (s *Service) Track(ctx context.Context, req usecase.TrackRequest) (*entity.AnalyticsEvent, error) {
	if err := entity.ValidateUserID(req.UserID); err != nil {
		return nil, err
	}
	eventType := strings.TrimSpace(req.EventType)
	if eventType == "" || len(eventType) > MaxEventTypeLength {
		return nil, errs.ErrInvalidRequest
	}

	event := &entity.AnalyticsEvent{
		ID:         s.idGenerator.NewID(),
		UserID:     req.UserID,
		EventType:  eventType,
		EventData:  req.EventData,
		Platform:   valueOr(req.Platform, entity.DefaultPlatform),
		AppVersion: valueOr(req.AppVersion, entity.DefaultAppVersion),
		CreatedAt:  s.timeProvider.Now(),
	}
	if event.EventData == nil {
		event.EventData = map[string]any{}
	}

	if err := s.repo.Create(ctx, event); err != nil {
		s.logger.Error("Failed to store analytics event", map[string]any{
			"userId":    req.UserID,
			"eventType": eventType,
			"error":     err.Error(),
		})
		return nil, err
	}

	return event, nil
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
