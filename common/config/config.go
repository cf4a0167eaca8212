package config

import (
	"os"
	"strconv"
	"time"
)

// AuthConfig holds the tunables of the authentication subsystem.
// Values come from the environment; the zero-config Load() applies the
// production defaults. The struct is injected into the auth use case at
// construction so tests can run with alternate policies.
type AuthConfig struct {
	// MaxFailedAttempts is the number of consecutive wrong-password logins
	// that locks an account.
	MaxFailedAttempts int

	// LockDuration is how long an account stays locked once the failed
	// attempt threshold is reached.
	LockDuration time.Duration

	// ResetTokenTTL is the validity window of a password-reset token.
	ResetTokenTTL time.Duration

	// AccessTokenTTL is the validity window of an issued access token.
	AccessTokenTTL time.Duration

	// FrontendOrigin is the base URL used to build password-reset links.
	FrontendOrigin string
}

// DefaultAuthConfig returns the production lockout/token policy.
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		MaxFailedAttempts: 3,
		LockDuration:      30 * time.Second,
		ResetTokenTTL:     30 * time.Minute,
		AccessTokenTTL:    15 * 24 * time.Hour,
		FrontendOrigin:    "http://localhost:5173",
	}
}

// Load builds an AuthConfig from environment variables, falling back to
// DefaultAuthConfig for anything unset or unparseable.
func Load() AuthConfig {
	cfg := DefaultAuthConfig()

	if v := getEnvInt("AUTH_MAX_FAILED_ATTEMPTS"); v > 0 {
		cfg.MaxFailedAttempts = v
	}
	if v := getEnvInt("AUTH_LOCK_DURATION_SECONDS"); v > 0 {
		cfg.LockDuration = time.Duration(v) * time.Second
	}
	if v := getEnvInt("AUTH_RESET_TOKEN_TTL_MINUTES"); v > 0 {
		cfg.ResetTokenTTL = time.Duration(v) * time.Minute
	}
	if v := getEnvInt("AUTH_ACCESS_TOKEN_TTL_DAYS"); v > 0 {
		cfg.AccessTokenTTL = time.Duration(v) * 24 * time.Hour
	}
	if v := os.Getenv("FRONTEND_ORIGIN"); v != "" {
		cfg.FrontendOrigin = v
	}

	return cfg
}

func getEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
