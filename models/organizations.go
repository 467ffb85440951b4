package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization has a globally unique name and records which user created it.
type Organization struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedBy   User      `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}
