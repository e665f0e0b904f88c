package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request does not carry a session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie provided")

	// ErrEmptySessionCookie is returned when the session cookie is present
	// but its value is an empty string.
	ErrEmptySessionCookie = errors.New("empty session cookie")
)

// Client-facing response messages. Kept as constants so handlers and tests
// agree on the exact wording.
const (
	msgFieldsRequired      = "All fields are required"
	msgInvalidEmailFormat  = "Invalid email format"
	msgPasswordTooShort    = "Password must be at least 6 characters long"
	msgEmailExists         = "Email already exists"
	msgUsernameExists      = "Username already exists"
	msgInvalidCredentials  = "Invalid credentials"
	msgLoggedOut           = "Logged out successfully"
	msgInternalServerError = "Internal server error"
	msgUnauthorized        = "Unauthorized - invalid session"
	msgNoToken             = "Unauthorized - no session token provided"
	msgContentNotFound     = "Content not found"
	msgInvalidSearchType   = "Invalid search type"
)
