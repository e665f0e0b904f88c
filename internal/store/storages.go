package store

import (
	"github.com/voddeck/voddeck/internal/logger"
)

// Storages aggregates all repositories backed by the shared database handle.
type Storages struct {
	UserRepository UserRepository

	// DB is the underlying connection pool, exposed for health pings.
	DB *DB
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		DB:             db,
	}
}
