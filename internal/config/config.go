package config

import (
	"os"
	"time"
)

type Config struct {
	Addr        string
	DBPath      string
	BaseURL     string
	HTTPTimeout time.Duration
}

func Default() Config {
	return Config{
		Addr:        envOr("COURSEINFO_ADDR", "127.0.0.1:8080"),
		DBPath:      envOr("COURSEINFO_DB_PATH", "courses.db"),
		BaseURL:     envOr("COURSEINFO_BASE_URL", "https://app.pluralsight.com"),
		HTTPTimeout: envDurationOr("COURSEINFO_HTTP_TIMEOUT", 15*time.Second),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
