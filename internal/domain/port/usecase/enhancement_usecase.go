package usecase

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// EnhanceRequest is one fixed-mode enhancement request
type EnhanceRequest struct {
	UserID     string
	Mode       string // Catalog mode name, empty for the general enhancement
	Resolution string // Resolution tier name, empty for standard
	Image      []byte
}

// CustomEditRequest is an enhancement driven by a free-text instruction
type CustomEditRequest struct {
	UserID      string
	Instruction string
	Resolution  string
	Image       []byte
}

// EnhanceResult is returned after a successful enhancement
type EnhanceResult struct {
	EnhancementID    string
	EnhancedKey      string
	EnhancedURL      string // Presigned URL, empty when the image must be served by proxy
	Tier             entity.Tier
	Mode             entity.Mode
	Watermark        bool
	ProcessingTime   float64
	RemainingCredits int
	RemainingToday   int
}

// EnhancementUseCase defines the enhancement request lifecycle
type EnhancementUseCase interface {
	// Enhance runs admit, normalize, transform, charge, store and record for a catalog mode.
	// A failure after the charge refunds it before the error is returned.
	//
	// Possible errors:
	// - validation errors (ErrInvalidUserID, ErrInvalidMode, ErrInvalidTier, ErrInvalidImage)
	// - InsufficientCreditsError: If the user cannot afford the tier
	// - TransformError: If the AI gateway fails; nothing was charged
	// - StorageError: If storing a blob fails; the charge was refunded
	// - RefundError joined with the cause: If the refund itself failed
	Enhance(ctx context.Context, req EnhanceRequest) (*EnhanceResult, error)

	// CustomEdit is Enhance with a validated free-text instruction instead of a mode
	CustomEdit(ctx context.Context, req CustomEditRequest) (*EnhanceResult, error)

	// Image returns stored bytes, optionally as a thumbnail. It never touches the Ledger.
	Image(ctx context.Context, key string, thumbnail bool) ([]byte, error)

	// History returns a page of the user's enhancements, newest first
	History(ctx context.Context, userID string, limit, offset int) (*entity.EnhancementPage, error)
}
