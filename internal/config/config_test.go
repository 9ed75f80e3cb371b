package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADVENTURE_DIR", "SAVE_DIR", "REDIS_URL", "ENVIRONMENT", "LOG_LEVEL", "SEED"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.AdventureDir != "./adventure" || cfg.SaveDir != "./saves" {
		t.Errorf("dirs = %q, %q", cfg.AdventureDir, cfg.SaveDir)
	}
	if cfg.RedisURL != "" {
		t.Errorf("redis url = %q", cfg.RedisURL)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if cfg.Seed != 0 {
		t.Errorf("seed = %d", cfg.Seed)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADVENTURE_DIR", "/srv/adventures/beginners-cave")
	t.Setenv("REDIS_URL", "localhost:6379")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "12345")

	cfg := Load()
	if cfg.AdventureDir != "/srv/adventures/beginners-cave" {
		t.Errorf("adventure dir = %q", cfg.AdventureDir)
	}
	if cfg.RedisURL != "localhost:6379" {
		t.Errorf("redis url = %q", cfg.RedisURL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if cfg.Seed != 12345 {
		t.Errorf("seed = %d", cfg.Seed)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseSeedInvalid(t *testing.T) {
	if got := parseSeed("not-a-number"); got != 0 {
		t.Errorf("parseSeed = %d, want 0", got)
	}
}
