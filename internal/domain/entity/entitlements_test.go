package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntitlementsForTier(t *testing.T) {
	t.Run("Returns the matching tier", func(t *testing.T) {
		e := Entitlements{
			UserID: "device-1",
			Tiers: []TierEntitlement{
				{Tier: TierStandard, Credits: 3, HasCredits: true},
				{Tier: TierHD, Credits: 0, RemainingToday: 2, DailyAllowance: 5, HasCredits: true},
			},
		}

		assert.Equal(t, 3, e.ForTier(TierStandard).Credits)
		assert.Equal(t, 2, e.ForTier(TierHD).RemainingToday)
		assert.True(t, e.HasAnyCredits())
	})

	t.Run("Missing tier yields zero value", func(t *testing.T) {
		e := Entitlements{UserID: "device-1"}

		got := e.ForTier(TierHD)

		assert.Equal(t, TierHD, got.Tier)
		assert.False(t, got.HasCredits)
		assert.False(t, e.HasAnyCredits())
	})
}
