package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/service"
	"github.com/voddeck/voddeck/internal/store"
	"github.com/voddeck/voddeck/internal/utils"
	"github.com/voddeck/voddeck/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse(msgFieldsRequired), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			utils.WriteJSON(w, models.ErrorResponse(msgFieldsRequired), http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidEmailFormat):
			utils.WriteJSON(w, models.ErrorResponse(msgInvalidEmailFormat), http.StatusBadRequest)
		case errors.Is(err, service.ErrPasswordTooShort):
			utils.WriteJSON(w, models.ErrorResponse(msgPasswordTooShort), http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			utils.WriteJSON(w, models.ErrorResponse(msgEmailExists), http.StatusBadRequest)
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			utils.WriteJSON(w, models.ErrorResponse(msgUsernameExists), http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteJSON(w, models.ErrorResponse(msgInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if err = h.setSessionCookie(w, r, registeredUser); err != nil {
		utils.WriteJSON(w, models.ErrorResponse(msgInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse(registeredUser), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.User
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse(msgFieldsRequired), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			utils.WriteJSON(w, models.ErrorResponse(msgFieldsRequired), http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			// Unknown account and wrong password answer identically so the
			// response never reveals which accounts exist.
			utils.WriteJSON(w, models.ErrorResponse(msgInvalidCredentials), http.StatusNotFound)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSON(w, models.ErrorResponse(msgInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if err = h.setSessionCookie(w, r, foundUser); err != nil {
		utils.WriteJSON(w, models.ErrorResponse(msgInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse(foundUser), http.StatusOK)
}

// logout unconditionally clears the session cookie. Logging out without a
// prior session is a no-op success, not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, utils.ClearSessionCookie(h.secureCookies))
	utils.WriteJSON(w, models.OK(msgLoggedOut), http.StatusOK)
}

// authCheck surfaces the identity the auth middleware attached to the
// request context. Only reachable behind the gateway, so a missing identity
// means a wiring bug rather than an unauthenticated caller.
func (h *Handler) authCheck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("authCheck reached without identity in context")
		utils.WriteJSON(w, models.ErrorResponse(msgInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse(user), http.StatusOK)
}

// setSessionCookie issues a session token for the user and attaches it to
// the response as the session cookie. The cookie MaxAge equals the token
// validity window so the two expire together.
func (h *Handler) setSessionCookie(w http.ResponseWriter, r *http.Request, user models.User) error {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		return err
	}

	http.SetCookie(w, utils.NewSessionCookie(token.SignedString, h.services.AuthService.TokenDuration(), h.secureCookies))
	return nil
}
