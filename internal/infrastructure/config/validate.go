package config

import (
	"fmt"
	"strings"
)

// Lock backends
const (
	LockBackendLocal    = "local"
	LockBackendDatabase = "database"
	LockBackendRedis    = "redis"
)

// Validate lists every missing or invalid required setting
func (c *Config) Validate() error {
	var problems []string
	require := func(ok bool, key string) {
		if !ok {
			problems = append(problems, key)
		}
	}

	require(c.Server.Port > 0, "server.port")
	require(c.Database.Host != "", "database.host")
	require(c.Database.Port > 0, "database.port")
	require(c.Database.Username != "", "database.username")
	require(c.Database.Database != "", "database.database")
	require(c.Storage.Bucket != "", "storage.bucket")
	require(c.AI.Model != "", "ai.model")
	require(c.AI.StandardSize > 0, "ai.standardSize")
	require(c.AI.HDSize > 0, "ai.hdSize")
	require(c.Ledger.DayLength > 0, "ledger.dayLength")
	require(c.Reconciliation.Schedule != "", "reconciliation.schedule")
	require(c.Enhancement.MaxUploadBytes > 0, "enhancement.maxUploadBytes")
	require(c.Enhancement.ThumbnailSize > 0, "enhancement.thumbnailSize")
	if c.Environment == Production {
		require(c.AI.APIKey != "", "ai.apiKey")
	}

	switch c.Locking.Backend {
	case LockBackendLocal:
	case LockBackendDatabase:
		require(c.Locking.CleanupSchedule != "", "locking.cleanupSchedule")
	case LockBackendRedis:
		require(c.Redis.Addr != "", "redis.addr")
	default:
		problems = append(problems, fmt.Sprintf("locking.backend (unknown %q)", c.Locking.Backend))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration, missing or invalid keys: %s", strings.Join(problems, ", "))
	}
	return nil
}

// Warnings reports settings that are allowed but risky in production
func (c *Config) Warnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string
	switch strings.ToLower(c.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
	}
	if c.Locking.Backend == LockBackendLocal {
		warnings = append(warnings, "locking.backend 'local' only serializes requests within one instance")
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if origin == "*" {
			warnings = append(warnings, "cors.allowedOrigins allows every origin")
			break
		}
	}
	if c.Server.WriteTimeout < c.AI.Timeout {
		warnings = append(warnings, "server.writeTimeout is shorter than ai.timeout")
	}
	return warnings
}
