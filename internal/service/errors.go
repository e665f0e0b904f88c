package service

import (
	"errors"

	"github.com/voddeck/voddeck/internal/validators"
)

var (
	// ErrFieldsRequired is returned when a signup or login request is
	// missing one of its mandatory fields.
	ErrFieldsRequired = validators.ErrFieldsRequired

	// ErrInvalidEmailFormat is returned when the supplied email does not
	// match the address-format pattern.
	ErrInvalidEmailFormat = validators.ErrInvalidEmailFormat

	// ErrPasswordTooShort is returned when the supplied password is shorter
	// than the minimum length.
	ErrPasswordTooShort = validators.ErrPasswordTooShort

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password. The two cases are indistinguishable so a caller cannot
	// probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpired is returned by ParseToken when the session token's
	// expiry has passed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned by ParseToken for any other validation
	// failure: bad signature, malformed claims, garbage input.
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrNoTrendingContent is returned when the upstream trending page
	// contains no results to pick from.
	ErrNoTrendingContent = errors.New("no trending content available")
)
