package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultPort          = "8080"
	defaultSessionTTL    = 2 * time.Hour
	defaultSweepInterval = time.Minute
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return defaultPort
	}
	return port
}

// LogFile is the path the engine trace log is rotated into. Empty disables
// it.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}

type Sessions struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func parseDuration(name string, fallback time.Duration) (time.Duration, error) {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return d, nil
}

func NewSessions() (*Sessions, error) {
	ttl, err := parseDuration("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	interval, err := parseDuration("SESSION_SWEEP_INTERVAL", defaultSweepInterval)
	if err != nil {
		return nil, err
	}
	return &Sessions{TTL: ttl, SweepInterval: interval}, nil
}
