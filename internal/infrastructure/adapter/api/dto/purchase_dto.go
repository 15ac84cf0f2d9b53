package dto

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
)

// PurchaseRequest is the body of POST /api/purchase
type PurchaseRequest struct {
	UserID    string         `json:"user_id" validate:"required,max=255"`
	ProductID string         `json:"product_id" validate:"required,max=128"`
	Receipt   map[string]any `json:"receipt"`
	Platform  string         `json:"platform" validate:"omitempty,max=32"`
}

// PurchaseResponse reports the balances after a purchase
type PurchaseResponse struct {
	Success             bool       `json:"success"`
	PurchaseID          string     `json:"purchase_id"`
	StandardCredits     int        `json:"standard_credits"`
	HDCredits           int        `json:"hd_credits"`
	SubscriptionType    string     `json:"subscription_type,omitempty"`
	SubscriptionExpires *time.Time `json:"subscription_expires"`
}

// RestoreRequest is the body of POST /api/restore
type RestoreRequest struct {
	UserID string `json:"user_id" validate:"required,max=255"`
}

// PurchaseItem is one entry of a restored purchase history
type PurchaseItem struct {
	PurchaseID string    `json:"purchase_id"`
	ProductID  string    `json:"product_id"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
}

// RestoreResponse is the current state and purchase history of a user
type RestoreResponse struct {
	UserID              string         `json:"user_id"`
	StandardCredits     int            `json:"standard_credits"`
	HDCredits           int            `json:"hd_credits"`
	SubscriptionType    string         `json:"subscription_type,omitempty"`
	SubscriptionExpires *time.Time     `json:"subscription_expires"`
	Purchases           []PurchaseItem `json:"purchases"`
}

// NewPurchaseResponse maps an applied purchase
func NewPurchaseResponse(result *usecase.PurchaseResult) PurchaseResponse {
	return PurchaseResponse{
		Success:             true,
		PurchaseID:          result.Purchase.ID,
		StandardCredits:     result.User.StandardCredits,
		HDCredits:           result.User.HDCredits,
		SubscriptionType:    result.User.SubscriptionType,
		SubscriptionExpires: result.User.SubscriptionExpires,
	}
}

// NewRestoreResponse maps a restoration
func NewRestoreResponse(r *usecase.Restoration) RestoreResponse {
	return RestoreResponse{
		UserID:              r.User.ID,
		StandardCredits:     r.User.StandardCredits,
		HDCredits:           r.User.HDCredits,
		SubscriptionType:    r.User.SubscriptionType,
		SubscriptionExpires: r.User.SubscriptionExpires,
		Purchases:           newPurchaseItems(r.Purchases),
	}
}

func newPurchaseItems(purchases []*entity.Purchase) []PurchaseItem {
	items := make([]PurchaseItem, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, PurchaseItem{
			PurchaseID: p.ID,
			ProductID:  p.ProductID,
			Platform:   p.Platform,
			CreatedAt:  p.CreatedAt,
		})
	}
	return items
}
