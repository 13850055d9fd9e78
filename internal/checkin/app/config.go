package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MasterSecret     string // Required: master secret for deriving signing keys
	KeyVersions      int    // Optional: number of derived key versions (default: 1)
	ActiveKeyVersion string // Optional: version tag used for new tokens (default: highest derived)

	BaseURL       string        // Optional: public base for check-in URLs (default: http://localhost:8080)
	TokenTTL      time.Duration // Optional: check-in token lifetime (default: 10m)
	DisplayLead   time.Duration // Optional: how early tokens may be issued before start (default: 2h)
	SweepInterval time.Duration // Optional: expired-nonce sweep interval (default: 1m)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./attendance.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		MasterSecret:        os.Getenv("CHECKIN_MASTER_SECRET"),
		KeyVersions:         getEnvIntOrDefault("CHECKIN_KEY_VERSIONS", 1),
		ActiveKeyVersion:    os.Getenv("CHECKIN_ACTIVE_KEY_VERSION"),
		BaseURL:             getEnvOrDefault("CHECKIN_BASE_URL", "http://localhost:8080"),
		TokenTTL:            getEnvDurationOrDefault("CHECKIN_TOKEN_TTL", 10*time.Minute),
		DisplayLead:         getEnvDurationOrDefault("CHECKIN_DISPLAY_LEAD", 2*time.Hour),
		SweepInterval:       getEnvDurationOrDefault("CHECKIN_SWEEP_INTERVAL", 1*time.Minute),
		DatabaseFile:        getEnvOrDefault("CHECKIN_DATABASE_FILE", "attendance.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.MasterSecret == "" {
		return Config{}, fmt.Errorf("CHECKIN_MASTER_SECRET is required")
	}

	if cfg.KeyVersions < 1 {
		cfg.KeyVersions = 1
	}

	// New tokens sign with the newest derived version unless pinned.
	if cfg.ActiveKeyVersion == "" {
		cfg.ActiveKeyVersion = fmt.Sprintf("v%d", cfg.KeyVersions)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accepts duration strings (e.g. "10m", "2h", "90s").
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// A bare integer is taken as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
