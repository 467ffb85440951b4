package models

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Authentication
// ===============================

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	IsActive bool      `json:"is_active"`
	IsStaff  bool      `json:"is_staff"`
}

type LoginUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

type LoginResponse struct {
	Access  string    `json:"access"`
	Refresh string    `json:"refresh"`
	User    LoginUser `json:"user"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

// ===============================
// Organizations
// ===============================

type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateOrganizationRequest is a partial patch; nil fields are left untouched.
type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type OrganizationResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedBy   *UserResponse `json:"created_by,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ===============================
// Members
// ===============================

type AddMemberRequest struct {
	UserID         string `json:"user"`
	OrganizationID string `json:"organization"`
	IsAdmin        bool   `json:"is_admin"`
}

type UpdateMemberRequest struct {
	IsAdmin *bool `json:"is_admin"`
}

type MemberResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user"`
	OrganizationID uuid.UUID `json:"organization"`
	IsAdmin        bool      `json:"is_admin"`
	JoinedAt       time.Time `json:"joined_at"`
}

// ===============================
// Converters
// ===============================

func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		IsActive: u.IsActive,
		IsStaff:  u.IsStaff,
	}
}

func NewOrganizationResponse(org *Organization) *OrganizationResponse {
	resp := &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		CreatedAt:   org.CreatedAt,
	}
	if org.CreatedBy.ID != uuid.Nil {
		resp.CreatedBy = NewUserResponse(&org.CreatedBy)
	}
	return resp
}

func NewMemberResponse(m *Member) *MemberResponse {
	return &MemberResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		IsAdmin:        m.IsAdmin,
		JoinedAt:       m.JoinedAt,
	}
}
