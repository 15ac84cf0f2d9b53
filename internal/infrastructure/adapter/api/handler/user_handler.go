package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles entitlement reads of a user
type UserHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	ledger usecase.LedgerUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		ledger: ledger,
		logger: logger.With(map[string]any{"handler": "user"}),
	}
}

// GetCredits handles the GET /api/credits/:userId endpoint.
// Unknown users are created lazily and report the free allowance.
func (h *UserHandler) GetCredits(c *gin.Context) {
	entitlements, err := h.ledger.Entitlements(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, "Error getting user credits", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCreditsResponse(entitlements))
}
