package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase and restore HTTP requests
type PurchaseHandler struct {
	ledger   usecase.LedgerUseCase
	validate *validator.Validate
	logger   coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(
	ledger usecase.LedgerUseCase,
	validate *validator.Validate,
	logger coreport.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		ledger:   ledger,
		validate: validate,
		logger:   logger.With(map[string]any{"handler": "purchase"}),
	}
}

// Purchase handles the POST /api/purchase endpoint
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}

	result, err := h.ledger.ApplyPurchase(c.Request.Context(), usecase.PurchaseCommand{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Receipt:   req.Receipt,
		Platform:  req.Platform,
	})
	if err != nil {
		respondError(c, h.logger, "Purchase failed", err)
		return
	}

	h.logger.Info("Purchase applied", map[string]any{
		"userId":     req.UserID,
		"productId":  req.ProductID,
		"purchaseId": result.Purchase.ID,
	})

	c.JSON(http.StatusOK, dto.NewPurchaseResponse(result))
}

// Restore handles the POST /api/restore endpoint
func (h *PurchaseHandler) Restore(c *gin.Context) {
	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}

	restoration, err := h.ledger.RestorePurchases(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, h.logger, "Restore failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRestoreResponse(restoration))
}
