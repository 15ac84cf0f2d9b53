package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.Set("database.host", "localhost")
	v.Set("database.username", "photo")
	v.Set("database.database", "photo_restoration")
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestDecode_DefaultsAndDurations(t *testing.T) {
	config, err := decode(newTestViper(nil), Development)
	require.NoError(t, err)

	assert.Equal(t, Development, config.Environment)
	assert.Equal(t, 8000, config.Server.Port)
	assert.Equal(t, 120*time.Second, config.Server.WriteTimeout)
	assert.Equal(t, 30*time.Minute, config.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, config.Database.SlowThreshold)
	assert.Equal(t, 24*time.Hour, config.Ledger.DayLength)
	assert.Equal(t, time.Hour, config.Storage.PresignExpiry)
	assert.Equal(t, 90*time.Second, config.AI.Timeout)
	assert.Equal(t, 10*time.Second, config.Locking.Timeout)
	assert.Equal(t, LockBackendLocal, config.Locking.Backend)
	assert.Equal(t, int64(20<<20), config.Enhancement.MaxUploadBytes)
	assert.Equal(t, []string{"*"}, config.CORS.AllowedOrigins)
}

func TestDecode_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PR_DB_HOST", "db.internal")
	t.Setenv("PR_SERVER_PORT", "9090")
	t.Setenv("PR_STORAGE_BUCKET", "restored-photos")
	t.Setenv("PR_LOCKING_BACKEND", "redis")

	config, err := decode(newTestViper(nil), Development)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", config.Database.Host)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "restored-photos", config.Storage.Bucket)
	assert.Equal(t, LockBackendRedis, config.Locking.Backend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		values  map[string]any
		missing []string
	}{
		{
			name:   "complete development config",
			env:    Development,
			values: nil,
		},
		{
			name:    "missing database settings are all listed",
			env:     Development,
			values:  map[string]any{"database.host": "", "database.username": ""},
			missing: []string{"database.host", "database.username"},
		},
		{
			name:    "production requires an AI key",
			env:     Production,
			values:  nil,
			missing: []string{"ai.apiKey"},
		},
		{
			name:    "unknown lock backend",
			env:     Development,
			values:  map[string]any{"locking.backend": "zookeeper"},
			missing: []string{"locking.backend"},
		},
		{
			name:    "redis backend needs an address",
			env:     Development,
			values:  map[string]any{"locking.backend": "redis", "redis.addr": ""},
			missing: []string{"redis.addr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(newTestViper(tt.values), tt.env)
			if len(tt.missing) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, key := range tt.missing {
				assert.Contains(t, err.Error(), key)
			}
		})
	}
}

func TestLedgerConfig_Catalog(t *testing.T) {
	t.Run("built-in catalog by default", func(t *testing.T) {
		catalog, err := LedgerConfig{DayLength: 24 * time.Hour}.Catalog()
		require.NoError(t, err)

		product, err := catalog.Product("hd_credits_10")
		require.NoError(t, err)
		assert.Equal(t, entity.TierHD, product.Tier)
		assert.Equal(t, 85, catalog.Plans["premium_yearly"].Allowance(entity.TierStandard))
	})

	t.Run("configured entries extend and override", func(t *testing.T) {
		catalog, err := LedgerConfig{
			DayLength: 12 * time.Hour,
			Plans: map[string]PlanConfig{
				"family_monthly": {Standard: 100, HD: 40},
			},
			Products: map[string]ProductConfig{
				"family_monthly":      {Kind: "subscription", Days: 30},
				"standard_credits_10": {Kind: "credits", Tier: "standard", Credits: 12},
			},
		}.Catalog()
		require.NoError(t, err)

		assert.Equal(t, 12*time.Hour, catalog.DayLength)
		assert.Equal(t, "family_monthly", catalog.Products["family_monthly"].PlanID)
		assert.Equal(t, 40, catalog.Plans["family_monthly"].Allowance(entity.TierHD))
		assert.Equal(t, 12, catalog.Products["standard_credits_10"].Credits)
	})

	t.Run("subscription to an unknown plan is rejected", func(t *testing.T) {
		_, err := LedgerConfig{
			DayLength: 24 * time.Hour,
			Products:  map[string]ProductConfig{"gold_monthly": {Kind: "subscription", Days: 30}},
		}.Catalog()
		assert.Error(t, err)
	})

	t.Run("credits of an unknown tier are rejected", func(t *testing.T) {
		_, err := LedgerConfig{
			DayLength: 24 * time.Hour,
			Products:  map[string]ProductConfig{"uhd_credits_5": {Kind: "credits", Tier: "uhd", Credits: 5}},
		}.Catalog()
		assert.Error(t, err)
	})
}

func TestConfig_Warnings(t *testing.T) {
	config, err := decode(newTestViper(map[string]any{"ai.apiKey": "key"}), Production)
	require.NoError(t, err)

	warnings := config.Warnings()

	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "database.sslMode")

	config.Environment = Development
	assert.Empty(t, config.Warnings())
}
