package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler accepts client usage events
type AnalyticsHandler struct {
	analytics usecase.AnalyticsUseCase
	validate  *validator.Validate
	logger    coreport.Logger
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(
	analytics usecase.AnalyticsUseCase,
	validate *validator.Validate,
	logger coreport.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		validate:  validate,
		logger:    logger.With(map[string]any{"handler": "analytics"}),
	}
}

// Track handles the POST /api/analytics endpoint
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req dto.AnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}

	event, err := h.analytics.Track(c.Request.Context(), usecase.TrackRequest{
		UserID:     req.UserID,
		EventType:  req.EventType,
		EventData:  req.EventData,
		Platform:   req.Platform,
		AppVersion: req.AppVersion,
	})
	if err != nil {
		respondError(c, h.logger, "Failed to track event", err)
		return
	}

	c.JSON(http.StatusOK, dto.AnalyticsResponse{Success: true, EventID: event.ID})
}
