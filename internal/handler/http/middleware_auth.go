// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and metrics concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/service"
	"github.com/voddeck/voddeck/internal/utils"
	"github.com/voddeck/voddeck/models"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It extracts the session cookie from the incoming request, validates the
// token via [service.AuthService.ParseToken], resolves the token subject to
// a stored account, and on success stores the sanitized user in the request
// context under [utils.UserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The session cookie is absent or empty ([ErrNoSessionCookie],
//     [ErrEmptySessionCookie]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token signature or claims are invalid ([service.ErrTokenIsInvalid]).
//   - The token subject no longer resolves to an account (the user was
//     deleted after token issuance).
//
// Downstream handlers are never invoked for a rejected request. All
// rejection events are logged using the context-scoped logger obtained via
// [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getSessionTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse(msgNoToken), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("session token expired")
			default:
				log.Err(err).Msg("error occurred during parsing session token")
			}
			utils.WriteJSON(w, models.ErrorResponse(msgUnauthorized), http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.GetUserByID(ctx, token.UserID)
		if err != nil {
			// A valid token whose subject no longer exists is treated like
			// any other verification failure.
			log.Err(err).Int64("user_id", token.UserID).Msg("token subject could not be resolved")
			utils.WriteJSON(w, models.ErrorResponse(msgUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the sanitized user in the context so downstream handlers can
		// retrieve it without re-parsing the token or hitting the directory.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user.Sanitized())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getSessionTokenFromRequest extracts the signed session token from the
// request's session cookie.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionCookie] if the request carries no session cookie.
//   - [ErrEmptySessionCookie] if the cookie exists but its value is empty.
func getSessionTokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(utils.SessionCookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}

	if cookie.Value == "" {
		return "", ErrEmptySessionCookie
	}

	return cookie.Value, nil
}
