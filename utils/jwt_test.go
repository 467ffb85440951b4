package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, err := tm.IssueAccessToken(userID, "a@b.com")
	require.NoError(t, err)

	claims, err := tm.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenCarriesJTI(t *testing.T) {
	tm := NewTokenManager("secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, jti, expiresAt, err := tm.IssueRefreshToken(userID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, jti)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, jti.String(), claims.ID)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	tm := NewTokenManager("secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	access, err := tm.IssueAccessToken(userID, "a@b.com")
	require.NoError(t, err)
	refresh, _, _, err := tm.IssueRefreshToken(userID)
	require.NoError(t, err)

	_, err = tm.ParseRefresh(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = tm.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager("secret", -time.Minute, -time.Minute)

	access, err := tm.IssueAccessToken(uuid.New(), "a@b.com")
	require.NoError(t, err)
	_, err = tm.ParseAccess(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	refresh, _, _, err := tm.IssueRefreshToken(uuid.New())
	require.NoError(t, err)
	_, err = tm.ParseRefresh(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestWrongSecretRejected(t *testing.T) {
	tm := NewTokenManager("secret", 15*time.Minute, 24*time.Hour)
	other := NewTokenManager("different", 15*time.Minute, 24*time.Hour)

	token, err := tm.IssueAccessToken(uuid.New(), "a@b.com")
	require.NoError(t, err)

	_, err = other.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGarbageTokenRejected(t *testing.T) {
	tm := NewTokenManager("secret", 15*time.Minute, 24*time.Hour)
	_, err := tm.ParseAccess("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
