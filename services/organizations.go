package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/saranyasailakshmi/DIV-Tech/apperrors"
	"github.com/saranyasailakshmi/DIV-Tech/models"
)

type OrganizationService interface {
	Create(ctx context.Context, creatorID uuid.UUID, req *models.CreateOrganizationRequest) (*models.OrganizationResponse, error)
	List(ctx context.Context) ([]*models.OrganizationResponse, error)
	Get(ctx context.Context, orgID string) (*models.OrganizationResponse, error)
	Update(ctx context.Context, orgID string, requesterID uuid.UUID, req *models.UpdateOrganizationRequest) (*models.OrganizationResponse, error)
	Delete(ctx context.Context, orgID string, requesterID uuid.UUID) error
}

type organizationService struct {
	db *gorm.DB
}

func NewOrganizationService(db *gorm.DB) OrganizationService {
	return &organizationService{db: db}
}

// Create persists the organization and the creator's admin membership in one
// transaction: an organization must never exist without its creator holding
// admin membership.
func (s *organizationService) Create(ctx context.Context, creatorID uuid.UUID, req *models.CreateOrganizationRequest) (*models.OrganizationResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidation("name", "Name is required.")
	}

	var creator models.User
	if err := s.db.WithContext(ctx).First(&creator, "id = ?", creatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var existing models.Organization
	if err := tx.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		tx.Rollback()
		return nil, apperrors.NewConflict("An organization with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, err
	}

	org := models.Organization{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: creatorID,
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(&org).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("An organization with this name already exists")
		}
		return nil, err
	}

	member := models.Member{
		ID:             uuid.New(),
		UserID:         creatorID,
		OrganizationID: org.ID,
		IsAdmin:        true,
		JoinedAt:       time.Now(),
	}
	if err := tx.Create(&member).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"organization": org.Name,
		"created_by":   creatorID,
	}).Info("organization created")

	org.CreatedBy = creator
	return models.NewOrganizationResponse(&org), nil
}

func (s *organizationService) List(ctx context.Context) ([]*models.OrganizationResponse, error) {
	var orgs []models.Organization
	if err := s.db.WithContext(ctx).Preload("CreatedBy").Find(&orgs).Error; err != nil {
		return nil, err
	}

	resp := make([]*models.OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		resp = append(resp, models.NewOrganizationResponse(&orgs[i]))
	}
	return resp, nil
}

func (s *organizationService) Get(ctx context.Context, orgID string) (*models.OrganizationResponse, error) {
	org, err := s.findOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return models.NewOrganizationResponse(org), nil
}

func (s *organizationService) Update(ctx context.Context, orgID string, requesterID uuid.UUID, req *models.UpdateOrganizationRequest) (*models.OrganizationResponse, error) {
	org, err := s.findOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	admin, err := isOrgAdmin(ctx, s.db, requesterID, org.ID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, apperrors.NewForbidden("You are not authorized to update this organization.")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidation("name", "Name is required.")
		}
		if name != org.Name {
			var count int64
			if err := s.db.WithContext(ctx).
				Model(&models.Organization{}).
				Where("name = ? AND id <> ?", name, org.ID).
				Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, apperrors.NewConflict("An organization with this name already exists")
			}
		}
		org.Name = name
	}
	if req.Description != nil {
		org.Description = *req.Description
	}

	if err := s.db.WithContext(ctx).Omit("CreatedBy").Save(org).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("An organization with this name already exists")
		}
		return nil, err
	}

	return models.NewOrganizationResponse(org), nil
}

// Delete removes the organization and all of its membership rows in one
// transaction, so no orphaned memberships survive.
func (s *organizationService) Delete(ctx context.Context, orgID string, requesterID uuid.UUID) error {
	org, err := s.findOrganization(ctx, orgID)
	if err != nil {
		return err
	}

	admin, err := isOrgAdmin(ctx, s.db, requesterID, org.ID)
	if err != nil {
		return err
	}
	if !admin {
		return apperrors.NewForbidden("You are not authorized to delete this organization.")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", org.ID).Delete(&models.Member{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Organization{}, "id = ?", org.ID).Error
	})
	if err != nil {
		return err
	}

	logrus.WithField("organization", org.Name).Info("organization deleted")
	return nil
}

func (s *organizationService) findOrganization(ctx context.Context, orgID string) (*models.Organization, error) {
	id, err := uuid.Parse(orgID)
	if err != nil {
		return nil, apperrors.NewNotFound("Organization")
	}

	var org models.Organization
	if err := s.db.WithContext(ctx).Preload("CreatedBy").First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Organization")
		}
		return nil, err
	}
	return &org, nil
}
