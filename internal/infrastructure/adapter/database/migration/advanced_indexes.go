package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes that gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// The reconciliation sweep only ever reads pending rows
		"idx_refund_reconciliations_pending",
		`CREATE INDEX IF NOT EXISTS idx_refund_reconciliations_pending
			ON refund_reconciliations (created_at)
			WHERE status = 'pending'`,
	},
	{
		"idx_users_active_subscription",
		`CREATE INDEX IF NOT EXISTS idx_users_active_subscription
			ON users (subscription_expires)
			WHERE subscription_type <> ''`,
	},
	{
		"idx_analytics_events_created_at_brin",
		`CREATE INDEX IF NOT EXISTS idx_analytics_events_created_at_brin
			ON analytics_events USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		"idx_enhancements_created_at_brin",
		`CREATE INDEX IF NOT EXISTS idx_enhancements_created_at_brin
			ON enhancements USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		"idx_enhancements_mode",
		`CREATE INDEX IF NOT EXISTS idx_enhancements_mode
			ON enhancements (mode)`,
	},
}

// CreateAdvancedIndexes creates partial and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies storage settings; failures are logged and ignored
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []string{
		// Every request updates its user row; leave room for HOT updates
		`ALTER TABLE users SET (fillfactor = 80)`,
		`ALTER TABLE enhancements ALTER COLUMN user_id SET STATISTICS 1000`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
