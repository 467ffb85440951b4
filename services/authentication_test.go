package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saranyasailakshmi/DIV-Tech/apperrors"
	"github.com/saranyasailakshmi/DIV-Tech/models"
)

func TestSignUpValidation(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())

	tests := []struct {
		name  string
		req   models.SignupRequest
		field string
	}{
		{"missing email", models.SignupRequest{Password: "pass123", FullName: "Alice"}, "email"},
		{"bad email format", models.SignupRequest{Email: "not-an-email", Password: "pass123", FullName: "Alice"}, "email"},
		{"no dot in domain", models.SignupRequest{Email: "a@b", Password: "pass123", FullName: "Alice"}, "email"},
		{"short password", models.SignupRequest{Email: "a@b.com", Password: "a1", FullName: "Alice"}, "password"},
		{"password without digit", models.SignupRequest{Email: "a@b.com", Password: "abcdef", FullName: "Alice"}, "password"},
		{"password without letter", models.SignupRequest{Email: "a@b.com", Password: "123456", FullName: "Alice"}, "password"},
		{"missing full name", models.SignupRequest{Email: "a@b.com", Password: "pass123"}, "full_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.SignUp(context.Background(), &tt.req)
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())

	first, err := auth.SignUp(context.Background(), &models.SignupRequest{
		Email: "a@b.com", Password: "pass123", FullName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", first.Email)
	assert.True(t, first.IsActive)

	_, err = auth.SignUp(context.Background(), &models.SignupRequest{
		Email: "a@b.com", Password: "pass456", FullName: "Alice2",
	})
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)

	var count int64
	require.NoError(t, database.Model(&models.User{}).Where("email = ?", "a@b.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSignUpNormalizesEmail(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())

	resp, err := auth.SignUp(context.Background(), &models.SignupRequest{
		Email: "  Alice@Example.COM ", Password: "pass123", FullName: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.Email)

	// a differently-cased duplicate still conflicts
	_, err = auth.SignUp(context.Background(), &models.SignupRequest{
		Email: "ALICE@example.com", Password: "pass123", FullName: "Alice",
	})
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)

	// login with any casing
	_, err = auth.Login(context.Background(), &models.LoginRequest{
		Email: "ALICE@EXAMPLE.COM", Password: "pass123",
	})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())
	signupUser(t, auth, "a@b.com", "Alice")

	resp, err := auth.Login(context.Background(), &models.LoginRequest{
		Email: "a@b.com", Password: "pass123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Access)
	assert.NotEmpty(t, resp.Refresh)
	assert.Equal(t, "a@b.com", resp.User.Email)
	assert.Equal(t, "Alice", resp.User.FullName)
}

func TestLoginInvalidCredentials(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())
	signupUser(t, auth, "a@b.com", "Alice")

	// wrong password and unknown email yield the same error
	_, wrongPass := auth.Login(context.Background(), &models.LoginRequest{
		Email: "a@b.com", Password: "wrong99",
	})
	_, unknown := auth.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@b.com", Password: "pass123",
	})
	assert.ErrorIs(t, wrongPass, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestLoginInactiveUser(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())
	signupUser(t, auth, "a@b.com", "Alice")

	require.NoError(t, database.Model(&models.User{}).
		Where("email = ?", "a@b.com").
		Update("is_active", false).Error)

	_, err := auth.Login(context.Background(), &models.LoginRequest{
		Email: "a@b.com", Password: "pass123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())

	_, err := auth.Login(context.Background(), &models.LoginRequest{Password: "pass123"})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")

	_, err = auth.Login(context.Background(), &models.LoginRequest{Email: "a@b.com"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "password")
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())
	signupUser(t, auth, "a@b.com", "Alice")

	login, err := auth.Login(context.Background(), &models.LoginRequest{
		Email: "a@b.com", Password: "pass123",
	})
	require.NoError(t, err)

	// the refresh token works before logout
	refreshed, err := auth.Refresh(context.Background(), login.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Access)

	require.NoError(t, auth.Logout(context.Background(), login.Refresh))

	// reusing the revoked token must fail, for refresh and logout alike
	_, err = auth.Refresh(context.Background(), login.Refresh)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	assert.ErrorIs(t, auth.Logout(context.Background(), login.Refresh), apperrors.ErrInvalidToken)
}

func TestLogoutTokenErrors(t *testing.T) {
	database := newTestDB(t)
	tokens := newTestTokens()
	auth := NewAuthenticationService(database, tokens)
	signupUser(t, auth, "a@b.com", "Alice")

	assert.ErrorIs(t, auth.Logout(context.Background(), ""), apperrors.ErrMissingToken)
	assert.ErrorIs(t, auth.Logout(context.Background(), "garbage"), apperrors.ErrInvalidToken)

	// an access token is not accepted where a refresh token is expected
	login, err := auth.Login(context.Background(), &models.LoginRequest{
		Email: "a@b.com", Password: "pass123",
	})
	require.NoError(t, err)
	assert.ErrorIs(t, auth.Logout(context.Background(), login.Access), apperrors.ErrInvalidToken)
}

func TestCreateSuperuserIdempotent(t *testing.T) {
	database := newTestDB(t)
	auth := NewAuthenticationService(database, newTestTokens())

	first, err := auth.CreateSuperuser(context.Background(), "admin@b.com", "root123", "Administrator")
	require.NoError(t, err)
	assert.True(t, first.IsStaff)
	assert.True(t, first.IsActive)

	second, err := auth.CreateSuperuser(context.Background(), "admin@b.com", "root123", "Administrator")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, database.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
