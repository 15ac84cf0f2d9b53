package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. PR_DB_HOST
const EnvPrefix = "PR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables onto config keys. Secrets are only
// ever expected from the environment.
var envOverrides = map[string]string{
	"PR_SERVER_HOST":        "server.host",
	"PR_SERVER_PORT":        "server.port",
	"PR_DB_HOST":            "database.host",
	"PR_DB_PORT":            "database.port",
	"PR_DB_USERNAME":        "database.username",
	"PR_DB_PASSWORD":        "database.password",
	"PR_DB_NAME":            "database.database",
	"PR_DB_SSL_MODE":        "database.sslMode",
	"PR_LOGGER_LEVEL":       "logger.level",
	"PR_STORAGE_ENDPOINT":   "storage.endpoint",
	"PR_STORAGE_REGION":     "storage.region",
	"PR_STORAGE_ACCESS_KEY": "storage.accessKey",
	"PR_STORAGE_SECRET_KEY": "storage.secretKey",
	"PR_STORAGE_BUCKET":     "storage.bucket",
	"PR_STORAGE_PUBLIC_URL": "storage.publicBaseUrl",
	"PR_AI_API_KEY":         "ai.apiKey",
	"PR_AI_MODEL":           "ai.model",
	"PR_REDIS_ADDR":         "redis.addr",
	"PR_REDIS_PASSWORD":     "redis.password",
	"PR_LOCKING_BACKEND":    "locking.backend",
}

// LoadConfig loads configuration from file based on the PR_ENV environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Printf("Warning: no %s.yaml found, using defaults and environment\n", env)
	}

	return decode(v, env)
}

// decode applies environment overrides, unmarshals and validates the configuration
func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 30)       // seconds
	v.SetDefault("server.writeTimeout", 120)     // seconds, transforms are slow
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 30)   // seconds

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 10) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)   // seconds
	v.SetDefault("database.poolMonitor", 60) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.service", "photo-restoration")

	v.SetDefault("ledger.dayLength", 24) // hours

	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "photo-restoration")
	v.SetDefault("storage.presignExpiry", 60) // minutes
	v.SetDefault("storage.verifyUploads", true)

	v.SetDefault("ai.model", "gemini-2.5-flash-image-preview")
	v.SetDefault("ai.timeout", 90) // seconds
	v.SetDefault("ai.standardSize", 1024)
	v.SetDefault("ai.hdSize", 2048)

	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("locking.backend", "local")
	v.SetDefault("locking.timeout", 10) // seconds
	v.SetDefault("locking.lease", 30)   // seconds
	v.SetDefault("locking.cleanupSchedule", "0 */5 * * * *")

	v.SetDefault("reconciliation.schedule", "0 * * * * *")
	v.SetDefault("reconciliation.batchSize", 50)
	v.SetDefault("reconciliation.maxAttempts", 10)

	v.SetDefault("cors.allowedOrigins", []string{"*"})

	v.SetDefault("enhancement.maxUploadBytes", 20<<20)
	v.SetDefault("enhancement.thumbnailSize", 200)

	v.SetDefault("metrics.enabled", true)
}

// getEnvironment determines the environment from PR_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}
}

// processDurations converts time.Duration fields from their raw integer values
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.PoolMonitor = time.Duration(config.Database.PoolMonitor) * time.Second

	config.Ledger.DayLength = time.Duration(config.Ledger.DayLength) * time.Hour
	config.Storage.PresignExpiry = time.Duration(config.Storage.PresignExpiry) * time.Minute
	config.AI.Timeout = time.Duration(config.AI.Timeout) * time.Second
	config.Locking.Timeout = time.Duration(config.Locking.Timeout) * time.Second
	config.Locking.Lease = time.Duration(config.Locking.Lease) * time.Second
}
