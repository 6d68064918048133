// Package config loads application configuration from environment variables.
// Every value has a default so the storefront boots with no configuration at
// all; Redis and RabbitMQ are optional collaborators discovered through
// their own variables.
package config

import (
	"os"
	"strconv"
)

// Config holds the runtime configuration of the storefront.
type Config struct {
	Env       string  // application environment (e.g. "dev", "prod")
	Port      string  // HTTP port to listen on
	SeatPrice float64 // fixed price of a regular seat
}

// Load reads configuration values from the environment, falling back to the
// defaults of the single-showing storefront.
func Load() Config {
	return Config{
		Env:       getenv("APP_ENV", "dev"),
		Port:      getenv("APP_PORT", "8080"),
		SeatPrice: envFloat("SEAT_PRICE", 15000),
	}
}

// envFloat parses a positive float from the environment, keeping the default
// on absence or a bad value.
func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
		return f
	}
	return def
}
