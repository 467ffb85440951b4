package models

import (
	"time"

	"github.com/google/uuid"
)

// RevokedToken is the refresh-token blacklist, keyed by the token's JTI.
// Rows become dead weight once ExpiresAt passes; the token would be
// rejected as expired anyway.
type RevokedToken struct {
	JTI       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExpiresAt time.Time `gorm:"not null"`
	RevokedAt time.Time
}
