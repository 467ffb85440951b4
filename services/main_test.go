package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saranyasailakshmi/DIV-Tech/db"
	"github.com/saranyasailakshmi/DIV-Tech/models"
	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive across queries
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))
	return database
}

func newTestTokens() *utils.TokenManager {
	return utils.NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func signupUser(t *testing.T, auth AuthenticationService, email, name string) *models.UserResponse {
	t.Helper()
	resp, err := auth.SignUp(context.Background(), &models.SignupRequest{
		Email:    email,
		Password: "pass123",
		FullName: name,
	})
	require.NoError(t, err)
	return resp
}
