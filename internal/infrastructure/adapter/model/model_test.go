package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

func TestUserRow(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("New rows start empty with the window at now", func(t *testing.T) {
		row := NewUser("device-1", now)

		assert.Equal(t, now, row.DailyResetAt)
		assert.Zero(t, row.StandardCredits)
		assert.NotNil(t, row.Metadata)
	})

	t.Run("Missing metadata reads as an empty map", func(t *testing.T) {
		row := &User{ID: "device-1", DailyResetAt: now}

		assert.Equal(t, map[string]any{}, row.ToEntity().Metadata)
	})
}

func TestEnhancementRowStoresTierAsResolution(t *testing.T) {
	row := EnhancementFromEntity(&entity.Enhancement{ID: "e1", Tier: entity.TierHD, Mode: entity.ModeColorize})

	assert.Equal(t, "hd", row.Resolution)
	assert.Equal(t, entity.TierHD, row.ToEntity().Tier)
}
