package store

import (
	"context"

	"github.com/voddeck/voddeck/models"
)

// UserRepository is the persistence boundary for user accounts. The rest of
// the application treats it as an opaque directory: lookups by the unique
// keys and id, plus account creation. Uniqueness of email and username is
// enforced by the directory itself at insert time.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// Pinger reports whether the underlying datastore is reachable.
// Used by the /ping-db health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}
