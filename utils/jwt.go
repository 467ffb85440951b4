package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrTokenInvalid = errors.New("token is invalid or expired")

// JWTClaims is shared by access and refresh tokens; TokenType keeps the two
// from being used interchangeably. Refresh tokens additionally carry a JTI
// in RegisteredClaims.ID so they can be blacklisted individually.
type JWTClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 token pairs.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken mints a short-lived bearer token for API calls.
func (tm *TokenManager) IssueAccessToken(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// IssueRefreshToken mints a revocable refresh token and returns its JTI and
// expiry for blacklist bookkeeping.
func (tm *TokenManager) IssueRefreshToken(userID uuid.UUID) (string, uuid.UUID, time.Time, error) {
	now := time.Now()
	jti := uuid.New()
	expiresAt := now.Add(tm.refreshTTL)
	claims := JWTClaims{
		UserID:    userID.String(),
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", uuid.Nil, time.Time{}, err
	}
	return signed, jti, expiresAt, nil
}

// ParseAccess verifies an access token and returns its claims.
func (tm *TokenManager) ParseAccess(tokenStr string) (*JWTClaims, error) {
	return tm.parse(tokenStr, TokenTypeAccess)
}

// ParseRefresh verifies a refresh token and returns its claims.
func (tm *TokenManager) ParseRefresh(tokenStr string) (*JWTClaims, error) {
	return tm.parse(tokenStr, TokenTypeRefresh)
}

func (tm *TokenManager) parse(tokenStr, wantType string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || claims.TokenType != wantType {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
