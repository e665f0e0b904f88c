package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/voddeck/voddeck/models"
)

// AuthService implements the user-facing authentication flows and the
// session token lifecycle.
type AuthService interface {
	// Signup validates and registers a new account. The Password field of
	// the input carries the plaintext; the returned record carries the
	// stored digest (callers must sanitize before responding).
	Signup(ctx context.Context, user models.User) (models.User, error)

	// Login verifies credentials and returns the account on success.
	// Unknown email and wrong password produce the same error.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session token string and returns the
	// decoded token with its UserID populated.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserByID resolves a token subject to the stored account record.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// TokenDuration reports the configured session validity window, used to
	// keep the cookie MaxAge in sync with token expiry.
	TokenDuration() time.Duration
}

// CatalogService exposes the proxied metadata catalog to the HTTP layer.
// Payloads stay opaque JSON end to end.
type CatalogService interface {
	// TrendingTitle picks one title uniformly at random from the current
	// trending page.
	TrendingTitle(ctx context.Context, mediaType models.MediaType) (json.RawMessage, error)

	Trailers(ctx context.Context, mediaType models.MediaType, id string) ([]json.RawMessage, error)
	Details(ctx context.Context, mediaType models.MediaType, id string) (json.RawMessage, error)
	Similar(ctx context.Context, mediaType models.MediaType, id string) ([]json.RawMessage, error)
	Category(ctx context.Context, mediaType models.MediaType, category string) ([]json.RawMessage, error)
	Search(ctx context.Context, mediaType models.MediaType, query string) ([]json.RawMessage, error)
}
