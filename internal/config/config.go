// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"augebit/internal/db"
)

// Config holds the server configuration.
type Config struct {
	Host string
	Port string

	DBDriver       db.Driver
	DatabaseURL    string
	MaxOpenConns   int
	AcquireTimeout time.Duration
	QueryTimeout   time.Duration
	AutoMigrate    bool

	ProfessionalsFile  string
	CORSAllowedOrigins []string
	LoginRateLimitRPS  float64
	LoginRateBurst     int
	PoolHealthSchedule string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

// ListenAddr is the address the HTTP server binds.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// EmailEnabled is true when SendGrid is fully configured.
func (c *Config) EmailEnabled() bool {
	return c.SendGridAPIKey != "" && c.SendGridFromEmail != ""
}

// SMSEnabled is true when Twilio is fully configured.
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// DATABASE_URL is required for the postgres driver; the sqlite driver falls
// back to augebit.db in the working directory.
func Load() (*Config, error) {
	driver, err := db.ParseDriver(getenv("DB_DRIVER", string(db.Postgres)))
	if err != nil {
		return nil, fmt.Errorf("DB_DRIVER: %w", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		if driver == db.Postgres {
			return nil, fmt.Errorf("DATABASE_URL not set")
		}
		databaseURL = "augebit.db"
	}

	cfg := &Config{
		Host:               getenv("HOST", "0.0.0.0"),
		Port:               getenv("PORT", "3000"),
		DBDriver:           driver,
		DatabaseURL:        databaseURL,
		ProfessionalsFile:  os.Getenv("PROFESSIONALS_FILE"),
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		PoolHealthSchedule: getenv("POOL_HEALTH_SCHEDULE", "@every 5m"),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail:  os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:   os.Getenv("SENDGRID_FROM_NAME"),
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:   os.Getenv("TWILIO_FROM_NUMBER"),
	}

	if cfg.MaxOpenConns, err = intEnv("DB_MAX_OPEN_CONNS", db.DefaultMaxOpenConns); err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.AcquireTimeout, err = durationEnv("DB_ACQUIRE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.QueryTimeout, err = durationEnv("DB_QUERY_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate, err = boolEnv("DB_AUTO_MIGRATE", false); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimitRPS, err = floatEnv("LOGIN_RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}
	if cfg.LoginRateBurst, err = intEnv("LOGIN_RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	out := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func intEnv(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid integer %q: %w", key, v, err)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid number %q: %w", key, v, err)
	}
	return f, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s has invalid boolean %q: %w", key, v, err)
	}
	return b, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid duration %q: %w", key, v, err)
	}
	return d, nil
}
