package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         5432,
		Username:     "photo",
		Password:     "secret",
		Database:     "photo_restoration",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		QueryTimeout: 5 * time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing host", mutate: func(c *Config) { c.Host = "" }, wantErr: "host"},
		{name: "bad port", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "port"},
		{name: "missing user", mutate: func(c *Config) { c.Username = "" }, wantErr: "username"},
		{name: "missing name", mutate: func(c *Config) { c.Database = "" }, wantErr: "name"},
		{name: "bad ssl mode", mutate: func(c *Config) { c.SSLMode = "sometimes" }, wantErr: "SSL"},
		{name: "no open conns", mutate: func(c *Config) { c.MaxOpenConns = 0 }, wantErr: "open"},
		{name: "no timeout", mutate: func(c *Config) { c.QueryTimeout = 0 }, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=photo password=secret dbname=photo_restoration sslmode=disable",
		validConfig().DSN())
}
