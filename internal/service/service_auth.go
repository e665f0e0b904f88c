package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/voddeck/voddeck/internal/config"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/store"
	"github.com/voddeck/voddeck/internal/utils"
	"github.com/voddeck/voddeck/internal/validators"
	"github.com/voddeck/voddeck/models"
)

// defaultAvatars is the fixed set a profile picture is drawn from at signup.
var defaultAvatars = []string{"/avatar1.png", "/avatar2.png", "/avatar3.png"}

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the session
// token lifecycle using a UserRepository for persistence, bcrypt for
// password hashing, and HMAC-SHA256 for token signing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces the credential rules for signup and login input.
	validator validators.Validator

	// tokenSignKey is the process-wide secret used to sign and verify
	// session tokens. Read-only after construction.
	tokenSignKey string

	// tokenDuration controls how long a newly issued session token remains
	// valid. The session cookie MaxAge is derived from the same value.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// Checks are applied in order and the first failure wins: all fields
// present, email format, password length, email not taken, username not
// taken. The pre-checks against the directory are an optimization for a
// friendlier error; the insert-time unique constraints remain the
// authoritative guard, and a constraint violation surfaced by CreateUser is
// reported identically to a pre-check failure.
//
// On success the password is replaced by its bcrypt digest, an avatar is
// drawn uniformly at random from the fixed set, and the persisted record
// (with server-assigned UserID) is returned.
func (a *authService) Signup(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, user.Email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", user.Email).Msg("email uniqueness pre-check failed")
		return models.User{}, fmt.Errorf("email uniqueness pre-check failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, user.Username); err == nil {
		return models.User{}, store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", user.Username).Msg("username uniqueness pre-check failed")
		return models.User{}, fmt.Errorf("username uniqueness pre-check failed: %w", err)
	}

	digest, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = digest
	user.Avatar = defaultAvatars[rand.IntN(len(defaultAvatars))]

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		// Unique violations pass through untouched so the handler reports
		// them exactly like pre-check duplicates.
		if errors.Is(err, store.ErrEmailAlreadyExists) || errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and verifies the supplied password
// against the stored bcrypt digest. An unknown email and a wrong password
// both return ErrInvalidCredentials, so a caller cannot distinguish
// "no such account" from "wrong password".
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	credentials := models.User{Email: email, Password: password}
	if err := a.validator.Validate(ctx, credentials, validators.FieldLoginCredentials); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.Password) {
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// Validation failures are normalised to two sentinels so callers do not need
// to inspect low-level JWT errors: ErrTokenIsExpired for an elapsed expiry,
// ErrTokenIsInvalid for everything else (bad signature, malformed claims).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateSessionToken(tokenString, a.tokenSignKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// GetUserByID resolves a token subject to the stored account record.
// Storage sentinels pass through so the gateway can treat a deleted user
// like any other verification failure.
func (a *authService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, userID)
}

// TokenDuration reports the configured session validity window.
func (a *authService) TokenDuration() time.Duration {
	return a.tokenDuration
}
