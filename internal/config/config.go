// Package config loads process configuration from the environment.
// The configuration is built once at startup and passed by reference into the
// components that need it; business logic never reads the environment directly.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/Maaaaaik/Odoo-Bridge-Unificado/internal/core/apperror"
)

// Config holds all process configuration.
type Config struct {
	// HTTP Server
	Port string

	// Odoo connection
	OdooURL      string
	OdooDB       string
	OdooUsername string
	OdooPassword string

	// Outbound call budget for the remote ledger
	OdooTimeout time.Duration

	// Logging
	LogLevel string
	AppEnv   string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "5000"),

		OdooURL:      os.Getenv("ODOO_URL"),
		OdooDB:       os.Getenv("ODOO_DB"),
		OdooUsername: os.Getenv("ODOO_USERNAME"),
		OdooPassword: os.Getenv("ODOO_PASSWORD"),

		OdooTimeout: getEnvDuration("ODOO_TIMEOUT", 60*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		AppEnv:   getEnv("APP_ENV", "development"),
	}
}

// ValidateOdoo checks that the four remote connection settings are present.
// Called before any network dial so a misconfigured process fails fast.
func (c *Config) ValidateOdoo() error {
	var missing []string
	if c.OdooURL == "" {
		missing = append(missing, "ODOO_URL")
	}
	if c.OdooDB == "" {
		missing = append(missing, "ODOO_DB")
	}
	if c.OdooUsername == "" {
		missing = append(missing, "ODOO_USERNAME")
	}
	if c.OdooPassword == "" {
		missing = append(missing, "ODOO_PASSWORD")
	}
	if len(missing) > 0 {
		return apperror.NewConfiguration("missing Odoo connection settings: " + strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
