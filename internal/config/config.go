// Package config loads host configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AdventureDir string
	SaveDir      string
	RedisURL     string // empty = filesystem saves
	Environment  string
	LogLevel     slog.Level
	Seed         int64 // 0 = time-based
}

func Load() *Config {
	return &Config{
		AdventureDir: getEnv("ADVENTURE_DIR", "./adventure"),
		SaveDir:      getEnv("SAVE_DIR", "./saves"),
		RedisURL:     getEnv("REDIS_URL", ""),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Seed:         parseSeed(getEnv("SEED", "0")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseSeed(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
