package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/database/migration"
)

// defaultMonitorInterval is how often pool statistics are sampled
const defaultMonitorInterval = 30 * time.Second

// ErrNotConnected is returned by Manager methods called before Connect
var ErrNotConnected = errors.New("database is not connected")

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger.With(map[string]any{"component": "database"}),
		timeProvider: timeProvider,
	}
}

// Connect opens the pool and pings it, retrying up to RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"host": m.config.Host,
		"port": m.config.Port,
		"name": m.config.Database,
	})

	attempts := max(m.config.RetryAttempts, 1)

	var err error
	var gormDB *gorm.DB
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			m.timeProvider.Sleep(coreport.Duration(m.config.RetryDelay))
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		gormDB, err = m.open(ctx)
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	m.db = gormDB
	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	interval := m.config.MonitorInterval
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	m.connectionMonitor = NewConnectionPoolMonitor(m.db, m.logger)
	if err := m.connectionMonitor.Start(interval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
		Logger:         NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc:        m.timeProvider.Now,
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return gormDB, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// PoolMetrics returns the last sampled connection pool statistics
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// Close stops pool monitoring and closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}
