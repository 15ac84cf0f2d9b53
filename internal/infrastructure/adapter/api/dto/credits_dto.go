package dto

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// TierCredits is the spendable state of one tier
type TierCredits struct {
	Credits        int  `json:"credits"`
	DailyAllowance int  `json:"daily_allowance"`
	RemainingToday int  `json:"remaining_today"`
	HasCredits     bool `json:"has_credits"`
}

// CreditsResponse is the entitlement snapshot of GET /api/credits/:userId
type CreditsResponse struct {
	UserID              string                 `json:"user_id"`
	TotalCredits        int                    `json:"total_credits"`
	Tiers               map[string]TierCredits `json:"tiers"`
	SubscriptionType    string                 `json:"subscription_type,omitempty"`
	SubscriptionExpires *time.Time             `json:"subscription_expires"`
	SubscriptionActive  bool                   `json:"subscription_active"`
	HasCredits          bool                   `json:"has_credits"`
	Watermark           bool                   `json:"watermark"`
}

// NewCreditsResponse maps an entitlement snapshot
func NewCreditsResponse(e *entity.Entitlements) CreditsResponse {
	resp := CreditsResponse{
		UserID:              e.UserID,
		Tiers:               make(map[string]TierCredits, len(e.Tiers)),
		SubscriptionType:    e.SubscriptionType,
		SubscriptionExpires: e.SubscriptionExpires,
		SubscriptionActive:  e.SubscriptionActive,
		HasCredits:          e.HasAnyCredits(),
		Watermark:           e.Watermarked,
	}
	for _, t := range e.Tiers {
		resp.TotalCredits += t.Credits
		resp.Tiers[string(t.Tier)] = TierCredits{
			Credits:        t.Credits,
			DailyAllowance: t.DailyAllowance,
			RemainingToday: t.RemainingToday,
			HasCredits:     t.HasCredits,
		}
	}
	return resp
}
