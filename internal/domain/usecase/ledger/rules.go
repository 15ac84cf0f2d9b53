package ledger

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

// Rules holds the entitlement arithmetic. It never touches storage; the service
// applies it inside a row-locked read-modify-write.
type Rules struct {
	catalog Catalog
}

// NewRules creates the rules over a catalog
func NewRules(catalog Catalog) *Rules {
	if catalog.DayLength <= 0 {
		catalog.DayLength = DefaultDayLength
	}
	return &Rules{catalog: catalog}
}

// Catalog returns the catalog the rules evaluate against
func (r *Rules) Catalog() Catalog {
	return r.catalog
}

// ResetDailyUsageIfExpired zeroes the daily counters once the window is a full day old.
// It reports whether a reset happened.
func (r *Rules) ResetDailyUsageIfExpired(user *entity.User, now time.Time) bool {
	if !user.DailyWindowExpired(now, r.catalog.DayLength) {
		return false
	}
	user.ResetDaily(now)
	return true
}

// DailyAllowance returns the plan allowance of a tier, zero without an active subscription
func (r *Rules) DailyAllowance(user *entity.User, tier entity.Tier, now time.Time) int {
	if !user.HasActiveSubscription(now) {
		return 0
	}
	plan, ok := r.catalog.Plans[user.SubscriptionType]
	if !ok {
		return 0
	}
	return plan.Allowance(tier)
}

// RemainingDailyAllowance returns what is left of today's allowance.
// An expired window counts as unused without modifying the user.
func (r *Rules) RemainingDailyAllowance(user *entity.User, tier entity.Tier, now time.Time) int {
	allowance := r.DailyAllowance(user, tier, now)
	if allowance == 0 {
		return 0
	}
	used := user.DailyUsed(tier)
	if user.DailyWindowExpired(now, r.catalog.DayLength) {
		used = 0
	}
	return max(0, allowance-used)
}

// HasCredits reports whether one unit of the tier can be spent now
func (r *Rules) HasCredits(user *entity.User, tier entity.Tier, now time.Time) bool {
	return user.Credits(tier) > 0 || r.RemainingDailyAllowance(user, tier, now) > 0
}

// Deduct consumes exactly one unit, purchased balance first, then the daily allowance.
// The caller must have reset an expired window first.
func (r *Rules) Deduct(user *entity.User, tier entity.Tier, now time.Time) (entity.ChargeSource, error) {
	if user.Credits(tier) > 0 {
		if err := user.ConsumeCredit(tier, now); err != nil {
			return entity.SourceUnknown, err
		}
		return entity.SourcePurchased, nil
	}

	if r.RemainingDailyAllowance(user, tier, now) > 0 {
		user.ConsumeDaily(tier, now)
		return entity.SourceDaily, nil
	}

	return entity.SourceUnknown, errs.NewInsufficientCreditsError(user.ID, tier.String(), 0, 0)
}

// Refund gives back one unit. A known source restores exactly that pool; when the
// daily window was reset since the charge there is nothing left to restore.
// An unknown source restores the daily allowance first, then the purchased balance.
func (r *Rules) Refund(user *entity.User, tier entity.Tier, source entity.ChargeSource, now time.Time) entity.ChargeSource {
	switch source {
	case entity.SourcePurchased:
		user.AddCredits(tier, 1, now)
		return entity.SourcePurchased
	case entity.SourceDaily:
		user.RestoreDaily(tier, now)
		return entity.SourceDaily
	default:
		if user.RestoreDaily(tier, now) {
			return entity.SourceDaily
		}
		user.AddCredits(tier, 1, now)
		return entity.SourcePurchased
	}
}

// ApplyPurchaseEffect credits a pack or grants a subscription period starting now
func (r *Rules) ApplyPurchaseEffect(user *entity.User, product entity.Product, now time.Time) error {
	switch product.Kind {
	case entity.ProductCredits:
		user.AddCredits(product.Tier, product.Credits, now)
	case entity.ProductSubscription:
		user.ExtendSubscription(product.PlanID, time.Duration(product.Days)*24*time.Hour, now)
	default:
		return errs.ErrUnknownProduct
	}
	return nil
}

// IsWatermarked reports whether the user is not paying in any form:
// no purchased balance in any tier and no active subscription
func (r *Rules) IsWatermarked(user *entity.User, now time.Time) bool {
	return user.TotalCredits() == 0 && !user.HasActiveSubscription(now)
}

// RequestWatermarked decides the watermark of a completed request from the state after
// its charge. The unit the request consumed still counts as paid, so spending the last
// credit yields a clean result while the snapshot reports the next request as watermarked.
func (r *Rules) RequestWatermarked(user *entity.User, charge *entity.Charge, now time.Time) bool {
	paid := user.TotalCredits()
	if charge != nil && charge.Source == entity.SourcePurchased {
		paid++
	}
	return paid == 0 && !user.HasActiveSubscription(now)
}

// Entitlements builds the display snapshot of a user at now
func (r *Rules) Entitlements(user *entity.User, now time.Time) entity.Entitlements {
	tiers := make([]entity.TierEntitlement, 0, len(entity.Tiers()))
	for _, tier := range entity.Tiers() {
		tiers = append(tiers, entity.TierEntitlement{
			Tier:           tier,
			Credits:        user.Credits(tier),
			DailyAllowance: r.DailyAllowance(user, tier, now),
			RemainingToday: r.RemainingDailyAllowance(user, tier, now),
			HasCredits:     r.HasCredits(user, tier, now),
		})
	}

	return entity.Entitlements{
		UserID:              user.ID,
		Tiers:               tiers,
		SubscriptionType:    user.SubscriptionType,
		SubscriptionExpires: user.SubscriptionExpires,
		SubscriptionActive:  user.HasActiveSubscription(now),
		Watermarked:         r.IsWatermarked(user, now),
	}
}
