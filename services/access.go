package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saranyasailakshmi/DIV-Tech/models"
)

// isOrgAdmin is the access gate guarding every mutating organization and
// membership operation: true iff a membership row exists for (userID, orgID)
// with the admin flag set. Evaluated fresh on each call, no caching.
func isOrgAdmin(ctx context.Context, db *gorm.DB, userID, orgID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&models.Member{}).
		Where("user_id = ? AND organization_id = ? AND is_admin = ?", userID, orgID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
