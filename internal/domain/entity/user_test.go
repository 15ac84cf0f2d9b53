package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/photo-restoration/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("device-abc", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "device-abc", user.ID)
		assert.Zero(t, user.StandardCredits)
		assert.Zero(t, user.HDCredits)
		assert.Empty(t, user.SubscriptionType)
		assert.Nil(t, user.SubscriptionExpires)
		assert.Equal(t, fixedTime, user.DailyResetAt)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.NotNil(t, user.Metadata)
	})

	t.Run("Invalid identifiers", func(t *testing.T) {
		for _, id := range []string{"", "   ", strings.Repeat("x", MaxUserIDLength+1)} {
			user, err := NewUser(id, mockTime)

			assert.ErrorIs(t, err, errs.ErrInvalidUserID)
			assert.Nil(t, user)
		}
	})
}

func TestUserCredits(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Tiers are independent", func(t *testing.T) {
		user := &User{ID: "u"}
		user.AddCredits(TierHD, 5, now)
		user.AddCredits(TierStandard, 2, now)

		assert.Equal(t, 5, user.Credits(TierHD))
		assert.Equal(t, 2, user.Credits(TierStandard))
		assert.Equal(t, 7, user.TotalCredits())
		assert.Equal(t, now, user.UpdatedAt)
	})

	t.Run("Non-positive amounts are ignored", func(t *testing.T) {
		user := &User{ID: "u"}
		user.AddCredits(TierStandard, 0, now)
		user.AddCredits(TierStandard, -3, now)

		assert.Zero(t, user.StandardCredits)
	})

	t.Run("Consume never goes negative", func(t *testing.T) {
		user := &User{ID: "u", HDCredits: 1}

		require.NoError(t, user.ConsumeCredit(TierHD, now))
		assert.ErrorIs(t, user.ConsumeCredit(TierHD, now), errs.ErrInsufficientCredits)
		assert.Zero(t, user.HDCredits)
	})
}

func TestUserDailyUsage(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Consume and restore", func(t *testing.T) {
		user := &User{ID: "u"}
		user.ConsumeDaily(TierStandard, now)
		user.ConsumeDaily(TierStandard, now)

		assert.Equal(t, 2, user.DailyUsed(TierStandard))
		assert.Zero(t, user.DailyUsed(TierHD))

		assert.True(t, user.RestoreDaily(TierStandard, now))
		assert.Equal(t, 1, user.DailyStandardUsed)
	})

	t.Run("Restore at zero is a no-op", func(t *testing.T) {
		user := &User{ID: "u"}

		assert.False(t, user.RestoreDaily(TierHD, now))
		assert.Zero(t, user.DailyHDUsed)
	})

	t.Run("Window expiry and reset", func(t *testing.T) {
		user := &User{ID: "u", DailyStandardUsed: 4, DailyHDUsed: 1, DailyResetAt: now.Add(-24 * time.Hour)}

		assert.True(t, user.DailyWindowExpired(now, 24*time.Hour))
		assert.False(t, user.DailyWindowExpired(now.Add(-time.Second), 24*time.Hour))

		user.ResetDaily(now)

		assert.Zero(t, user.DailyStandardUsed)
		assert.Zero(t, user.DailyHDUsed)
		assert.Equal(t, now, user.DailyResetAt)
	})
}

func TestUserSubscription(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	user := &User{ID: "u"}

	assert.False(t, user.HasActiveSubscription(now))

	user.ExtendSubscription("light_monthly", 30*24*time.Hour, now)

	assert.True(t, user.HasActiveSubscription(now))
	assert.Equal(t, "light_monthly", user.SubscriptionType)
	assert.False(t, user.HasActiveSubscription(now.Add(30*24*time.Hour)))
}

func TestParseTierAndMode(t *testing.T) {
	tier, err := ParseTier("")
	require.NoError(t, err)
	assert.Equal(t, TierStandard, tier)

	tier, err = ParseTier("HD")
	require.NoError(t, err)
	assert.Equal(t, TierHD, tier)

	_, err = ParseTier("ultra")
	assert.ErrorIs(t, err, errs.ErrInvalidTier)

	mode, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeEnhance, mode)

	mode, err = ParseMode("de-scratch")
	require.NoError(t, err)
	assert.Equal(t, ModeDeScratch, mode)

	_, err = ParseMode("custom-edit")
	assert.ErrorIs(t, err, errs.ErrInvalidMode)
}

func TestRefundReconciliation(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	rec := &RefundReconciliation{ID: "r", UserID: "u", Tier: TierHD, Source: SourceDaily, Status: ReconciliationPending}

	charge := rec.Charge()
	assert.Equal(t, "u", charge.UserID)
	assert.Equal(t, SourceDaily, charge.Source)

	rec.RecordFailure(errs.ErrUserLocked, 2, now)
	assert.Equal(t, ReconciliationPending, rec.Status)
	assert.Equal(t, 1, rec.Attempts)

	rec.RecordFailure(errs.ErrUserLocked, 2, now)
	assert.Equal(t, ReconciliationAbandoned, rec.Status)
	require.NotNil(t, rec.ResolvedAt)
}
