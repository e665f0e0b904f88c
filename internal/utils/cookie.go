package utils

import (
	"net/http"
	"time"
)

// SessionCookieName is the name of the HTTP cookie carrying the session token.
const SessionCookieName = "session"

// NewSessionCookie wraps a signed session token in an HTTP cookie with fixed
// security attributes:
//   - HttpOnly: the cookie is never exposed to client-side script
//   - SameSite=Strict: blocks cross-site submission
//   - Secure: set only when the deployment serves over TLS, since secure
//     cookies are silently dropped by clients over plaintext HTTP
//
// maxAge must equal the validity window of the token itself so the cookie
// and the token expire together.
func NewSessionCookie(token string, maxAge time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearSessionCookie returns a cookie that immediately expires the session
// cookie on the client: same name, empty value, MaxAge -1. Used by logout.
func ClearSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
