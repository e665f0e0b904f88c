package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func userRows(u models.User, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"user_id", "email", "username", "password_hash", "avatar", "created_at"}).
		AddRow(u.UserID, u.Email, u.Username, u.Password, u.Avatar, createdAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{
		Email:    "a@b.com",
		Username: "tester",
		Password: "$2a$10$digest",
		Avatar:   "/avatar1.png",
	}
	now := time.Now()

	saved := user
	saved.UserID = 1

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Username, user.Password, user.Avatar).
		WillReturnRows(userRows(saved, now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Email, created.Email)
	assert.Equal(t, user.Username, created.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{
			name:       "duplicate email",
			constraint: emailUniqueConstraint,
			wantErr:    ErrEmailAlreadyExists,
		},
		{
			name:       "duplicate username",
			constraint: usernameUniqueConstraint,
			wantErr:    ErrUsernameAlreadyExists,
		},
		{
			name:       "unnamed unique constraint treated as email conflict",
			constraint: "",
			wantErr:    ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO users").
				WillReturnError(pgError(pgerrcode.UniqueViolation, tt.constraint))

			_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com", Username: "tester"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure, ""))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	want := models.User{
		UserID:   7,
		Email:    "a@b.com",
		Username: "tester",
		Password: "$2a$10$digest",
		Avatar:   "/avatar2.png",
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(want.Email).
		WillReturnRows(userRows(want, time.Now()))

	found, err := repo.FindUserByEmail(context.Background(), want.Email)
	require.NoError(t, err)
	assert.Equal(t, want.UserID, found.UserID)
	assert.Equal(t, want.Password, found.Password)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "missing@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	want := models.User{UserID: 3, Email: "c@d.com", Username: "someone", Avatar: "/avatar3.png"}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(want.Username).
		WillReturnRows(userRows(want, time.Now()))

	found, err := repo.FindUserByUsername(context.Background(), want.Username)
	require.NoError(t, err)
	assert.Equal(t, want.UserID, found.UserID)
}
