package config

import "errors"

// Sentinel errors returned by configuration validation. Callers should match
// against them with [errors.Is].
var (
	// ErrNoTokenSignKey is returned when no session token signing secret is
	// available. In production there is no fallback and startup must fail.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned when the database connection string is
	// missing from the environment.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
