package migration

import (
	"context"
	"errors"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// Models lists every table owned by the service
func Models() []any {
	return []any{
		&model.User{},
		&model.UserLock{},
		&model.Purchase{},
		&model.Enhancement{},
		&model.AnalyticsEvent{},
		&model.RefundReconciliation{},
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(db, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		m.logger.Error("Failed to create advanced indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	m.advancedIndexMgr.CreatePerformanceTweaks(ctx)

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version, empty for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// runVersionedMigrations runs the steps that AutoMigrate cannot express
func (m *MigrationManager) runVersionedMigrations(db *gorm.DB, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	if currentVersion == "" {
		return m.runBaseMigrations(db)
	}
	return nil
}

// runBaseMigrations adds the constraints a fresh schema needs beyond the model tags
func (m *MigrationManager) runBaseMigrations(db *gorm.DB) error {
	m.logger.Info("Running base migrations", nil)

	for _, stmt := range []string{
		`ALTER TABLE users DROP CONSTRAINT IF EXISTS chk_users_daily_usage`,
		`ALTER TABLE users ADD CONSTRAINT chk_users_daily_usage CHECK (daily_standard_used >= 0 AND daily_hd_used >= 0)`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
