package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment    string               `mapstructure:"environment"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	Ledger         LedgerConfig         `mapstructure:"ledger"`
	Storage        StorageConfig        `mapstructure:"storage"`
	AI             AIConfig             `mapstructure:"ai"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Locking        LockingConfig        `mapstructure:"locking"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	CORS           CORSConfig           `mapstructure:"cors"`
	Enhancement    EnhancementConfig    `mapstructure:"enhancement"`
	Metrics        MetricsConfig        `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`  // seconds
	PoolMonitor     time.Duration `mapstructure:"poolMonitor"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level   string `mapstructure:"level"`
	Service string `mapstructure:"service"`
}

// LedgerConfig overrides the built-in plan and product tables
type LedgerConfig struct {
	DayLength time.Duration            `mapstructure:"dayLength"` // hours
	Plans     map[string]PlanConfig    `mapstructure:"plans"`
	Products  map[string]ProductConfig `mapstructure:"products"`
}

// PlanConfig is the daily allowance of a subscription plan
type PlanConfig struct {
	Standard int `mapstructure:"standard"`
	HD       int `mapstructure:"hd"`
}

// ProductConfig is the effect of a store product: credits of a tier or a subscription
type ProductConfig struct {
	Kind    string `mapstructure:"kind"` // credits or subscription
	Tier    string `mapstructure:"tier"`
	Credits int    `mapstructure:"credits"`
	Plan    string `mapstructure:"plan"`
	Days    int    `mapstructure:"days"`
}

// StorageConfig contains object storage settings
type StorageConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	Region        string        `mapstructure:"region"`
	AccessKey     string        `mapstructure:"accessKey"`
	SecretKey     string        `mapstructure:"secretKey"`
	Bucket        string        `mapstructure:"bucket"`
	UsePathStyle  bool          `mapstructure:"usePathStyle"`
	CreateBucket  bool          `mapstructure:"createBucket"`
	PresignExpiry time.Duration `mapstructure:"presignExpiry"` // minutes
	PublicBaseURL string        `mapstructure:"publicBaseUrl"`
	VerifyUploads bool          `mapstructure:"verifyUploads"`
}

// AIConfig contains transform model settings
type AIConfig struct {
	APIKey       string        `mapstructure:"apiKey"`
	Model        string        `mapstructure:"model"`
	Timeout      time.Duration `mapstructure:"timeout"` // seconds
	StandardSize int           `mapstructure:"standardSize"`
	HDSize       int           `mapstructure:"hdSize"`
}

// RedisConfig contains the redis connection used by the redis lock backend
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LockingConfig selects the per-user lock backend
type LockingConfig struct {
	Backend         string        `mapstructure:"backend"` // local, database or redis
	Timeout         time.Duration `mapstructure:"timeout"` // seconds
	Lease           time.Duration `mapstructure:"lease"`   // seconds
	CleanupSchedule string        `mapstructure:"cleanupSchedule"`
}

// ReconciliationConfig controls the refund reconciliation sweep
type ReconciliationConfig struct {
	Schedule    string `mapstructure:"schedule"`
	BatchSize   int    `mapstructure:"batchSize"`
	MaxAttempts int    `mapstructure:"maxAttempts"`
}

// CORSConfig lists allowed browser origins
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowedOrigins"`
	AllowCredentials bool     `mapstructure:"allowCredentials"`
}

// EnhancementConfig contains upload and thumbnail limits
type EnhancementConfig struct {
	MaxUploadBytes int64 `mapstructure:"maxUploadBytes"`
	ThumbnailSize  int   `mapstructure:"thumbnailSize"`
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
