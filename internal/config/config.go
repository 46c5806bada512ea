// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress  string
	StaticDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	KafkaBrokers []string // empty = event publishing disabled
	RosterTopic  string
	LogLevel     string
	LogFormat    string
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev. A .env file in the working directory is honoured if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddress:  getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:    getEnv("STATIC_DIR", "web/static"),
		ReadTimeout:  getDurationEnv("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getDurationEnv("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  getDurationEnv("HTTP_IDLE_TIMEOUT", 60*time.Second),
		KafkaBrokers: splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		RosterTopic:  getEnv("ROSTER_TOPIC", "roster_events"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
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

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
