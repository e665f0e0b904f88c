package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "testsecret"

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(42, 15*24*time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateSessionToken(token.SignedString, testSignKey)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		signKey  string
	}{
		{name: "zero duration", duration: 0, signKey: testSignKey},
		{name: "empty sign key", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(1, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateSessionToken_WrongKey(t *testing.T) {
	token, err := GenerateSessionToken(7, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token.SignedString, "another-secret")
	assert.Error(t, err)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   "7",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateSessionToken(signed, testSignKey)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateSessionToken_Tampered(t *testing.T) {
	token, err := GenerateSessionToken(7, time.Hour, testSignKey)
	require.NoError(t, err)

	// Flip a character inside the payload segment.
	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := strings.Join([]string{parts[0], string(payload), parts[2]}, ".")

	_, err = ValidateSessionToken(tampered, testSignKey)
	assert.Error(t, err)
}

func TestValidateSessionToken_MalformedSubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateSessionToken(signed, testSignKey)
	assert.Error(t, err)
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("definitely.not.a-jwt", testSignKey)
	assert.Error(t, err)
}
