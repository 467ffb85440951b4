package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by a unique, lowercased email.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string    `gorm:"type:varchar(255);not null"` // bcrypt hash
	FullName   string    `gorm:"type:varchar(100);not null"`
	IsActive   bool      `gorm:"default:true"`
	IsStaff    bool      `gorm:"default:false"`
	DateJoined time.Time
}
