package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db           Pinger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Health handles the GET / and GET /health endpoints
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: h.timeProvider.Now().UTC(),
	})
}

// Ready handles the GET /ready endpoint; it fails while the database is unreachable
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Readiness check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:    "unavailable",
			Timestamp: h.timeProvider.Now().UTC(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ready",
		Timestamp: h.timeProvider.Now().UTC(),
	})
}
