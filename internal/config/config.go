// Package config centralises configuration for the fitness tracker binaries.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values for the HTTP API.
type Config struct {
	HTTPAddress     string
	ServiceName     string
	ShutdownTimeout time.Duration
	RateLimitRPS    float64 // requests per second; 0 disables rate limiting
	RateLimitBurst  int
	LogsExport      bool // tee logs to the OTLP endpoint
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "fitness-tracker"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second),
		RateLimitRPS:    getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst:  getIntEnv("RATE_LIMIT_BURST", 100),
		LogsExport:      getBoolEnv("OTEL_LOGS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
