package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// DatabaseURL points at Postgres. When empty the server keeps the bundled
	// seed data in memory.
	DatabaseURL string

	// JWTSecret signs the tokens accepted by protected routes. Protected routes are
	// not registered when it is empty.
	JWTSecret string

	// AllowSeed enables POST /api/seed.
	AllowSeed bool

	// FilterCacheSize bounds the number of memoized filter results.
	FilterCacheSize int

	// LoadTimeout bounds one refresh of the directory from the advocate source.
	LoadTimeout time.Duration

	LogLevel    string
	CORSOrigins string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:            getString("ADVOCATES_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AllowSeed:       os.Getenv("ALLOW_SEED") == "1",
		FilterCacheSize: getInt("FILTER_CACHE_SIZE", 256),
		LoadTimeout:     getDuration("LOAD_TIMEOUT", 10*time.Second),
		LogLevel:        getString("LOG_LEVEL", "info"),
		CORSOrigins:     getString("CORS_ORIGINS", "*"),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
