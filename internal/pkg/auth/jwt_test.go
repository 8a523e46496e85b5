package auth

import (
	"testing"
	"time"

	"github.com/gokhanazp/riversideburger-sub000/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	cfg := &config.Config{}
	cfg.App.Name = "Riverside Burger API"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 7 * 24 * time.Hour
	return NewJWTManager(cfg)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := newTestManager()

	token, err := manager.GenerateAccessToken(42, "burger@example.com", true)
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "burger@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "user:42", claims.Subject)
}

func TestRefreshTokenNeverCarriesAdmin(t *testing.T) {
	manager := newTestManager()

	token, err := manager.GenerateRefreshToken(42, "burger@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	manager := newTestManager()

	access, err := manager.GenerateAccessToken(42, "burger@example.com", false)
	require.NoError(t, err)
	refresh, err := manager.GenerateRefreshToken(42, "burger@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, err = manager.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	manager := newTestManager()

	token, err := manager.GenerateAccessToken(42, "burger@example.com", false)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token + "x")
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := newTestManager().GenerateAccessToken(42, "burger@example.com", false)
	require.NoError(t, err)

	other := newTestManager()
	other.config.JWT.Secret = "ffffffffffffffffffffffffffffffff"
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := newTestManager()
	manager.config.JWT.AccessTokenExpiry = -time.Minute

	token, err := manager.GenerateAccessToken(42, "burger@example.com", false)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}
