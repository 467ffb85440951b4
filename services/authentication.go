package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/saranyasailakshmi/DIV-Tech/apperrors"
	"github.com/saranyasailakshmi/DIV-Tech/models"
	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

type AuthenticationService interface {
	SignUp(ctx context.Context, req *models.SignupRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error)
	CreateSuperuser(ctx context.Context, email, password, fullName string) (*models.User, error)
}

type authenticationService struct {
	db     *gorm.DB
	tokens *utils.TokenManager
}

func NewAuthenticationService(db *gorm.DB, tokens *utils.TokenManager) AuthenticationService {
	return &authenticationService{db: db, tokens: tokens}
}

// ======
// SignUp
// ======
func (s *authenticationService) SignUp(ctx context.Context, req *models.SignupRequest) (*models.UserResponse, error) {
	if verr := utils.ValidateSignup(req.Email, req.Password, req.FullName); verr != nil {
		return nil, verr
	}

	email := utils.NormalizeEmail(req.Email)

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperrors.NewConflict("A user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:         uuid.New(),
		Email:      email,
		Password:   string(hashedPassword),
		FullName:   req.FullName,
		IsActive:   true,
		DateJoined: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The unique index settles concurrent signups on the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("A user with this email already exists")
		}
		return nil, err
	}

	logrus.WithField("email", user.Email).Info("user registered")
	return models.NewUserResponse(&user), nil
}

// ======
// Login
// ======
func (s *authenticationService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if verr := utils.ValidateRequired(req.Email, "email"); verr != nil {
		return nil, verr
	}
	if verr := utils.ValidateRequired(req.Password, "password"); verr != nil {
		return nil, verr
	}

	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	access, err := s.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, _, _, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Access:  access,
		Refresh: refresh,
		User: models.LoginUser{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}

// authenticate resolves an email/password pair to an active user. All
// failure modes collapse into ErrInvalidCredentials so callers cannot
// distinguish an unknown email from a wrong password.
func (s *authenticationService) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", utils.NormalizeEmail(email)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// ======
// Logout
// ======
func (s *authenticationService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperrors.ErrMissingToken
	}

	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	revoked, err := s.isRevoked(ctx, jti)
	if err != nil {
		return err
	}
	if revoked {
		return apperrors.ErrInvalidToken
	}

	entry := models.RevokedToken{
		JTI:       jti,
		ExpiresAt: claims.ExpiresAt.Time,
		RevokedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrInvalidToken
		}
		return err
	}

	logrus.WithField("user_id", claims.UserID).Info("refresh token revoked")
	return nil
}

// =======
// Refresh
// =======
func (s *authenticationService) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrMissingToken
	}

	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	revoked, err := s.isRevoked(ctx, jti)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidToken
	}

	access, err := s.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &models.RefreshResponse{Access: access}, nil
}

func (s *authenticationService) isRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ===============
// CreateSuperuser
// ===============
// CreateSuperuser provisions an active staff account. Idempotent so it can
// run on every startup.
func (s *authenticationService) CreateSuperuser(ctx context.Context, email, password, fullName string) (*models.User, error) {
	if verr := utils.ValidateSignup(email, password, fullName); verr != nil {
		return nil, verr
	}

	normalized := utils.NormalizeEmail(email)

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalized).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:         uuid.New(),
		Email:      normalized,
		Password:   string(hashedPassword),
		FullName:   fullName,
		IsActive:   true,
		IsStaff:    true,
		DateJoined: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	logrus.WithField("email", user.Email).Info("superuser created")
	return &user, nil
}
