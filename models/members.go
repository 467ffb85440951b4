package models

import (
	"time"

	"github.com/google/uuid"
)

// Member links a user to an organization with an admin flag.
// The (user, organization) pair is unique: the index resolves concurrent
// adds so exactly one wins.
type Member struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_org"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_org"`
	User           User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization   Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	IsAdmin        bool         `gorm:"default:false"`
	JoinedAt       time.Time
}
