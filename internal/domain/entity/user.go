package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
)

// MaxUserIDLength bounds the opaque device/account identifier
const MaxUserIDLength = 255

// User is the entitlement-bearing entity: purchased credits per tier,
// an optional subscription and the daily usage of its allowance
type User struct {
	ID                  string         // Device or account identifier
	StandardCredits     int            // Purchased standard-tier credits
	HDCredits           int            // Purchased hd-tier credits
	SubscriptionType    string         // Plan identifier, empty when the user never subscribed
	SubscriptionExpires *time.Time     // End of the current subscription period
	DailyStandardUsed   int            // Standard-tier allowance used in the current window
	DailyHDUsed         int            // HD-tier allowance used in the current window
	DailyResetAt        time.Time      // Start of the current daily window
	Metadata            map[string]any // Auxiliary attributes such as a linked email
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewUser creates a user with empty balances and a daily window starting now
func NewUser(id string, timeProvider coreport.TimeProvider) (*User, error) {
	if err := ValidateUserID(id); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		DailyResetAt: now,
		Metadata:     map[string]any{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ValidateUserID checks that an identifier is non-blank and fits the column
func ValidateUserID(id string) error {
	if strings.TrimSpace(id) == "" || len(id) > MaxUserIDLength {
		return errs.ErrInvalidUserID
	}
	return nil
}

// Credits returns the purchased balance for a tier
func (u *User) Credits(tier Tier) int {
	if tier == TierHD {
		return u.HDCredits
	}
	return u.StandardCredits
}

// DailyUsed returns the daily counter for a tier
func (u *User) DailyUsed(tier Tier) int {
	if tier == TierHD {
		return u.DailyHDUsed
	}
	return u.DailyStandardUsed
}

// TotalCredits returns the purchased balance across all tiers
func (u *User) TotalCredits() int {
	return u.StandardCredits + u.HDCredits
}

// HasActiveSubscription reports whether a plan is set and has not expired at now
func (u *User) HasActiveSubscription(now time.Time) bool {
	return u.SubscriptionType != "" && u.SubscriptionExpires != nil && u.SubscriptionExpires.After(now)
}

// AddCredits increases the purchased balance of a tier
func (u *User) AddCredits(tier Tier, amount int, now time.Time) {
	if amount <= 0 {
		return
	}
	u.setCredits(tier, u.Credits(tier)+amount)
	u.UpdatedAt = now
}

// ConsumeCredit spends one purchased credit of a tier
func (u *User) ConsumeCredit(tier Tier, now time.Time) error {
	if u.Credits(tier) <= 0 {
		return errs.ErrInsufficientCredits
	}
	u.setCredits(tier, u.Credits(tier)-1)
	u.UpdatedAt = now
	return nil
}

// ConsumeDaily records one use of the daily allowance of a tier
func (u *User) ConsumeDaily(tier Tier, now time.Time) {
	u.setDailyUsed(tier, u.DailyUsed(tier)+1)
	u.UpdatedAt = now
}

// RestoreDaily gives back one use of the daily allowance; it never goes below zero
func (u *User) RestoreDaily(tier Tier, now time.Time) bool {
	if u.DailyUsed(tier) <= 0 {
		return false
	}
	u.setDailyUsed(tier, u.DailyUsed(tier)-1)
	u.UpdatedAt = now
	return true
}

// ResetDaily zeroes every daily counter and starts a new window at now
func (u *User) ResetDaily(now time.Time) {
	u.DailyStandardUsed = 0
	u.DailyHDUsed = 0
	u.DailyResetAt = now
	u.UpdatedAt = now
}

// ExtendSubscription sets the plan and moves its expiry to now+period
func (u *User) ExtendSubscription(planID string, period time.Duration, now time.Time) {
	expires := now.Add(period)
	u.SubscriptionType = planID
	u.SubscriptionExpires = &expires
	u.UpdatedAt = now
}

// DailyWindowExpired reports whether the current daily window is at least dayLength old
func (u *User) DailyWindowExpired(now time.Time, dayLength time.Duration) bool {
	return now.Sub(u.DailyResetAt) >= dayLength
}

func (u *User) setCredits(tier Tier, value int) {
	if tier == TierHD {
		u.HDCredits = value
		return
	}
	u.StandardCredits = value
}

func (u *User) setDailyUsed(tier Tier, value int) {
	if tier == TierHD {
		u.DailyHDUsed = value
		return
	}
	u.DailyStandardUsed = value
}
