package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an issued authentication session. The token is a signed
// JWT that is also persisted here so sessions can be revoked server-side.
type Session struct {
	BaseModel
	Token     string    `json:"token" gorm:"uniqueIndex;not null;type:text"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	IPAddress string    `json:"ip_address" gorm:"size:64"`
	UserAgent string    `json:"user_agent" gorm:"type:text"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the session is past its expiry time
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
