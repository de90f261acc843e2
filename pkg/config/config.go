package config

import (
	"os"
	"strconv"
)

// Config holds CLI host wiring configuration.
type Config struct {
	Backend      string // "memory", "stdout", "postgres", "sqlite", or "redis"
	LogLevel     string
	DatabaseURL  string
	DatabasePath string
	RedisAddr    string
	RedisStream  string
	ProfilePath  string
	MaxEvents    int
}

// Load loads configuration from environment variables.
func Load() *Config {
	backend := os.Getenv("EVENT_LOG_BACKEND")
	if backend == "" {
		backend = "stdout"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "postgres://ledgermark@localhost:5432/ledgermark?sslmode=disable"
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "ledgermark.db"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisStream := os.Getenv("REDIS_STREAM")
	if redisStream == "" {
		redisStream = "ledgermark:events"
	}

	maxEvents := 0
	if raw := os.Getenv("MAX_EVENTS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			maxEvents = n
		}
	}

	return &Config{
		Backend:      backend,
		LogLevel:     logLevel,
		DatabaseURL:  dbURL,
		DatabasePath: dbPath,
		RedisAddr:    redisAddr,
		RedisStream:  redisStream,
		ProfilePath:  os.Getenv("CONFIG_PROFILE"),
		MaxEvents:    maxEvents,
	}
}
