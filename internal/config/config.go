// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	FrontendURL    string
	DBPath         string
	RosterPath     string // optional attorney roster YAML; empty = embedded default
	SessionTTL     time.Duration
	MaxUploadBytes int64
	Sim            SimConfig
}

// SimConfig controls the fixed delays used by the simulated backends. Tests
// zero these out; production keeps the values the product specifies.
type SimConfig struct {
	ScanDelay     time.Duration
	PaymentDelay  time.Duration
	MatchDelay    time.Duration
	GreetingDelay time.Duration
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    getEnv("FRONTEND_URL", ""),
		DBPath:         getEnv("DB_PATH", "./data/familybridge.db"),
		RosterPath:     getEnv("ROSTER_PATH", ""),
		SessionTTL:     getEnvDuration("SESSION_TTL", 2*time.Hour),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 10*1024*1024),
		Sim: SimConfig{
			ScanDelay:     getEnvDuration("SIM_SCAN_DELAY", 2000*time.Millisecond),
			PaymentDelay:  getEnvDuration("SIM_PAYMENT_DELAY", 1500*time.Millisecond),
			MatchDelay:    getEnvDuration("SIM_MATCH_DELAY", 1500*time.Millisecond),
			GreetingDelay: getEnvDuration("SIM_GREETING_DELAY", 500*time.Millisecond),
			ReplyDelayMin: getEnvDuration("SIM_REPLY_DELAY_MIN", 2000*time.Millisecond),
			ReplyDelayMax: getEnvDuration("SIM_REPLY_DELAY_MAX", 3000*time.Millisecond),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be > 0")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if c.Sim.ReplyDelayMax < c.Sim.ReplyDelayMin {
		return fmt.Errorf("SIM_REPLY_DELAY_MAX must be >= SIM_REPLY_DELAY_MIN")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
