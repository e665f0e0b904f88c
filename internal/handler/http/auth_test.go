package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/service"
	"github.com/voddeck/voddeck/internal/store"
	"github.com/voddeck/voddeck/internal/utils"
	"github.com/voddeck/voddeck/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn      func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	getUserFn     func(ctx context.Context, userID int64) (models.User, error)
	tokenDuration time.Duration
}

func (m *mockAuthService) Signup(ctx context.Context, user models.User) (models.User, error) {
	return m.signupFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) TokenDuration() time.Duration {
	if m.tokenDuration == 0 {
		return 15 * 24 * time.Hour
	}
	return m.tokenDuration
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return &Handler{
		services: &service.Services{AuthService: auth},
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context so handlers can
// call logger.FromRequest without a real middleware chain.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// sessionCookie returns the session cookie from the recorded response, or nil.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == utils.SessionCookieName {
			return c
		}
	}
	return nil
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Email:    "alice@example.com",
	Username: "alice",
	Password: "secret-password",
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

// TestSignup_Success verifies that a valid registration results in 201
// Created, a session cookie, and a sanitized user in the response body.
func TestSignup_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signupFn: func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 1
			u.Password = "bcrypt-digest"
			u.Avatar = "/avatar2.png"
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(userBody(t, validUser))))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "signup must set the session cookie")
	assert.Equal(t, signedToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Empty(t, resp.User.Password, "password digest must never leave the server")
}

// TestSignup_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader("{invalid json}")))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgFieldsRequired)
}

// TestSignup_ServiceErrors verifies the mapping from service and store
// sentinels to HTTP statuses and client messages.
func TestSignup_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing fields", service.ErrFieldsRequired, http.StatusBadRequest, msgFieldsRequired},
		{"bad email", service.ErrInvalidEmailFormat, http.StatusBadRequest, msgInvalidEmailFormat},
		{"short password", service.ErrPasswordTooShort, http.StatusBadRequest, msgPasswordTooShort},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusBadRequest, msgEmailExists},
		{"username taken", store.ErrUsernameAlreadyExists, http.StatusBadRequest, msgUsernameExists},
		{"storage down", errors.New("connection refused"), http.StatusInternalServerError, msgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				signupFn: func(_ context.Context, _ models.User) (models.User, error) {
					return models.User{}, tt.err
				},
			}

			h := newHandlerWithAuth(t, auth)
			req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(userBody(t, validUser))))
			rec := httptest.NewRecorder()

			h.signup(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			assert.Nil(t, sessionCookie(rec), "no cookie may be issued on failure")
		})
	}
}

// TestSignup_TokenCreationFails verifies that a token signing failure after a
// successful registration surfaces as 500 without a cookie.
func TestSignup_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(userBody(t, validUser))))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies 200 OK, the session cookie, and the sanitized
// user payload.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, validUser.Email, email)
			assert.Equal(t, validUser.Password, password)
			return models.User{UserID: 7, Email: email, Username: "alice", Password: "digest"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(userBody(t, validUser))))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, signedToken, cookie.Value)

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Empty(t, resp.User.Password)
}

// TestLogin_InvalidCredentials verifies that both an unknown email and a
// wrong password produce the same 404 response.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(userBody(t, validUser))))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidCredentials)
	assert.Nil(t, sessionCookie(rec))
}

// TestLogin_MissingFields verifies that empty credentials map to 400.
func TestLogin_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrFieldsRequired
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{}`)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgFieldsRequired)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

// TestLogout verifies that logout clears the session cookie and succeeds even
// without a prior session.
func TestLogout(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgLoggedOut)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

// ─────────────────────────────────────────────
// authCheck
// ─────────────────────────────────────────────

// TestAuthCheck_WithIdentity verifies that authCheck echoes the user the
// middleware placed into the context.
func TestAuthCheck_WithIdentity(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	user := models.User{UserID: 3, Email: "bob@example.com", Username: "bob"}
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/v1/auth/authCheck", nil))
	req = req.WithContext(context.WithValue(req.Context(), utils.UserCtxKey, user))
	rec := httptest.NewRecorder()

	h.authCheck(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(3), resp.User.UserID)
}

// TestAuthCheck_WithoutIdentity verifies the 500 returned when the context
// carries no identity.
func TestAuthCheck_WithoutIdentity(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/v1/auth/authCheck", nil))
	rec := httptest.NewRecorder()

	h.authCheck(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
