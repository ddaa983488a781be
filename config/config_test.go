package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "ALLOWED_ORIGIN", "QR_URL_TEMPLATE", "MENU_OWNERSHIP_REQUIRED", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 12*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "https://food-me-psi.vercel.app", cfg.AllowedOrigin)
	assert.Equal(t, "https://example.com/cafe/%s", cfg.QRURLTemplate)
	assert.False(t, cfg.MenuOwnershipRequired)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	t.Setenv("MENU_OWNERSHIP_REQUIRED", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.True(t, cfg.MenuOwnershipRequired)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresMalformedDurations(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.RefreshTokenTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            "8000",
			DBDriver:        DriverSQLite,
			DatabaseDSN:     "file::memory:",
			JWTSecret:       "secret",
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
			AllowedOrigin:   "http://localhost:3000",
			QRURLTemplate:   "https://example.com/cafe/%s",
			LogLevel:        "info",
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }},
		{"zero access ttl", func(c *Config) { c.AccessTokenTTL = 0 }},
		{"template without placeholder", func(c *Config) { c.QRURLTemplate = "https://example.com/cafe" }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"empty origin", func(c *Config) { c.AllowedOrigin = "" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadPicksDSNForDriver(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "foodme.db", cfg.DatabaseDSN)
}
