package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService("test-secret", "test", time.Hour)
	require.NoError(t, err)

	token, err := svc.Generate("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "test", claims.Issuer)
}

func TestTokenValidateStripsBearerPrefix(t *testing.T) {
	svc, err := NewTokenService("test-secret", "test", time.Hour)
	require.NoError(t, err)

	token, err := svc.Generate("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := svc.Validate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenValidateEmpty(t *testing.T) {
	svc, err := NewTokenService("test-secret", "test", time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.Validate("Bearer ")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestTokenValidateExpired(t *testing.T) {
	svc, err := NewTokenService("test-secret", "test", -time.Minute)
	require.NoError(t, err)

	token, err := svc.Generate("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenValidateWrongSecret(t *testing.T) {
	issuer, err := NewTokenService("secret-one", "test", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenService("secret-two", "test", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Generate("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenValidateIssuerMismatch(t *testing.T) {
	a, err := NewTokenService("test-secret", "service-a", time.Hour)
	require.NoError(t, err)
	b, err := NewTokenService("test-secret", "service-b", time.Hour)
	require.NoError(t, err)

	token, err := a.Generate("user-1", "alice", "alice@example.com")
	require.NoError(t, err)

	_, err = b.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService("", "test", time.Hour)
	assert.Error(t, err)
}

func TestTokenValidateGarbage(t *testing.T) {
	svc, err := NewTokenService("test-secret", "test", time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
