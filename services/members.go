package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/saranyasailakshmi/DIV-Tech/apperrors"
	"github.com/saranyasailakshmi/DIV-Tech/models"
)

type MemberService interface {
	Add(ctx context.Context, requesterID uuid.UUID, req *models.AddMemberRequest) (*models.MemberResponse, error)
	List(ctx context.Context) ([]*models.MemberResponse, error)
	Get(ctx context.Context, memberID string) (*models.MemberResponse, error)
	Update(ctx context.Context, memberID string, requesterID uuid.UUID, req *models.UpdateMemberRequest) (*models.MemberResponse, error)
	Remove(ctx context.Context, memberID string, requesterID uuid.UUID) error
}

type memberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) MemberService {
	return &memberService{db: db}
}

// Add creates a membership on behalf of an admin of the target organization.
// The (user, organization) pair is unique; the index decides concurrent adds.
func (s *memberService) Add(ctx context.Context, requesterID uuid.UUID, req *models.AddMemberRequest) (*models.MemberResponse, error) {
	verr := &apperrors.ValidationError{}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		verr.Add("user", "A valid user is required.")
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		verr.Add("organization", "A valid organization is required.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidation("user", "User does not exist.")
		}
		return nil, err
	}
	var org models.Organization
	if err := s.db.WithContext(ctx).First(&org, "id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidation("organization", "Organization does not exist.")
		}
		return nil, err
	}

	admin, err := isOrgAdmin(ctx, s.db, requesterID, orgID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, apperrors.NewForbidden("Only organization admins can add members.")
	}

	var existing models.Member
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		First(&existing).Error; err == nil {
		return nil, apperrors.NewConflict("User is already a member of this organization")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := models.Member{
		ID:             uuid.New(),
		UserID:         userID,
		OrganizationID: orgID,
		IsAdmin:        req.IsAdmin,
		JoinedAt:       time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("User is already a member of this organization")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":      userID,
		"organization": org.Name,
		"is_admin":     member.IsAdmin,
	}).Info("member added")

	return models.NewMemberResponse(&member), nil
}

func (s *memberService) List(ctx context.Context) ([]*models.MemberResponse, error) {
	var members []models.Member
	if err := s.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, err
	}

	resp := make([]*models.MemberResponse, 0, len(members))
	for i := range members {
		resp = append(resp, models.NewMemberResponse(&members[i]))
	}
	return resp, nil
}

func (s *memberService) Get(ctx context.Context, memberID string) (*models.MemberResponse, error) {
	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return models.NewMemberResponse(member), nil
}

// Update patches the admin flag. The requester must be an admin of the
// membership's organization, not necessarily the target member; a requester
// passing that check may demote themselves.
func (s *memberService) Update(ctx context.Context, memberID string, requesterID uuid.UUID, req *models.UpdateMemberRequest) (*models.MemberResponse, error) {
	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	admin, err := isOrgAdmin(ctx, s.db, requesterID, member.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, apperrors.NewForbidden("Only organization admins can update members.")
	}

	if req.IsAdmin != nil {
		member.IsAdmin = *req.IsAdmin
	}

	if err := s.db.WithContext(ctx).Omit("User", "Organization").Save(member).Error; err != nil {
		return nil, err
	}
	return models.NewMemberResponse(member), nil
}

func (s *memberService) Remove(ctx context.Context, memberID string, requesterID uuid.UUID) error {
	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return err
	}

	admin, err := isOrgAdmin(ctx, s.db, requesterID, member.OrganizationID)
	if err != nil {
		return err
	}
	if !admin {
		return apperrors.NewForbidden("Only organization admins can remove members.")
	}

	if err := s.db.WithContext(ctx).Delete(&models.Member{}, "id = ?", member.ID).Error; err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"member_id":    member.ID,
		"organization": member.OrganizationID,
	}).Info("member removed")
	return nil
}

func (s *memberService) findMember(ctx context.Context, memberID string) (*models.Member, error) {
	id, err := uuid.Parse(memberID)
	if err != nil {
		return nil, apperrors.NewNotFound("Member")
	}

	var member models.Member
	if err := s.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Member")
		}
		return nil, err
	}
	return &member, nil
}
