package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is read once at startup from the environment.
type Config struct {
	Port                  string
	GinMode               string
	DBDriver              string
	DatabaseDSN           string
	JWTSecret             string
	AccessTokenTTL        time.Duration
	RefreshTokenTTL       time.Duration
	AllowedOrigin         string
	UploadDir             string
	QRURLTemplate         string
	LogLevel              string
	MenuOwnershipRequired bool
	ShutdownTimeout       time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	cfg := &Config{
		Port:                  getEnv("PORT", "8000"),
		GinMode:               getEnv("GIN_MODE", "debug"),
		DBDriver:              strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DatabaseDSN:           os.Getenv("DATABASE_DSN"),
		JWTSecret:             getEnv("JWT_SECRET", "661929cfafb3c51f6a35939a5476ec18a59b7db5f1ba27952950e1145104ca3b"),
		AccessTokenTTL:        getEnvAsDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:       getEnvAsDuration("REFRESH_TOKEN_TTL", 12*time.Hour),
		AllowedOrigin:         getEnv("ALLOWED_ORIGIN", "https://food-me-psi.vercel.app"),
		UploadDir:             getEnv("UPLOAD_DIR", "./uploads"),
		QRURLTemplate:         getEnv("QR_URL_TEMPLATE", "https://example.com/cafe/%s"),
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", "info")),
		MenuOwnershipRequired: getEnvAsBool("MENU_OWNERSHIP_REQUIRED", false),
		ShutdownTimeout:       getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = defaultDSN(cfg.DBDriver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		return fmt.Errorf("unsupported DB_DRIVER %q (must be postgres or sqlite)", c.DBDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.AllowedOrigin == "" {
		return errors.New("ALLOWED_ORIGIN is required")
	}
	if strings.Count(c.QRURLTemplate, "%s") != 1 {
		return fmt.Errorf("QR_URL_TEMPLATE must contain exactly one %%s: %q", c.QRURLTemplate)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

func defaultDSN(driver string) string {
	if driver == DriverSQLite {
		return "foodme.db"
	}
	return "host=localhost user=postgres password=postgres dbname=foodme port=5432 sslmode=disable"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
