package entity

import "time"

// TierEntitlement is what a user can still spend in one tier right now
type TierEntitlement struct {
	Tier           Tier `json:"tier"`
	Credits        int  `json:"credits"`
	DailyAllowance int  `json:"dailyAllowance"`
	RemainingToday int  `json:"remainingToday"`
	HasCredits     bool `json:"hasCredits"`
}

// Entitlements is a read-only view of a user's balances for client display
type Entitlements struct {
	UserID              string            `json:"userId"`
	Tiers               []TierEntitlement `json:"tiers"`
	SubscriptionType    string            `json:"subscriptionType,omitempty"`
	SubscriptionExpires *time.Time        `json:"subscriptionExpires,omitempty"`
	SubscriptionActive  bool              `json:"subscriptionActive"`
	Watermarked         bool              `json:"watermarked"`
}

// ForTier returns the entitlement of one tier, the zero value when absent
func (e Entitlements) ForTier(tier Tier) TierEntitlement {
	for _, t := range e.Tiers {
		if t.Tier == tier {
			return t
		}
	}
	return TierEntitlement{Tier: tier}
}

// HasAnyCredits reports whether any tier can still be spent
func (e Entitlements) HasAnyCredits() bool {
	for _, t := range e.Tiers {
		if t.HasCredits {
			return true
		}
	}
	return false
}
