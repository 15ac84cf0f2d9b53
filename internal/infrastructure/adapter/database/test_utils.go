package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/database/migration"
	timeprovider "github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/time"
)

// TestDBHostEnv enables database integration tests when set
const TestDBHostEnv = "PR_TEST_DB_HOST"

// TestDBManager provides utilities for testing against a real Postgres
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to the test database and resets its schema.
// The test is skipped when PR_TEST_DB_HOST is not set.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host := os.Getenv(TestDBHostEnv)
	if host == "" {
		t.Skipf("%s not set, skipping database integration test", TestDBHostEnv)
	}

	timeProvider := timeprovider.NewRealTimeProvider()
	config := &Config{
		Host:            host,
		Port:            getEnvIntOrDefault("PR_TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("PR_TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("PR_TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("PR_TEST_DB_NAME", "photo_restoration_test"),
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	m := &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
	m.SetupTestDB(t)
	return m
}

// SetupTestDB drops every table and recreates the schema
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	if err := db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := db.AutoMigrate(migration.Models()...); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
