package repository

import (
	"time"

	"classroom-backend/internal/database/models"

	"gorm.io/gorm"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByToken retrieves a session by its token with the owning user preloaded
func (r *SessionRepository) GetByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.Preload("User").First(&session, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken removes a session, revoking it
func (r *SessionRepository) DeleteByToken(token string) error {
	return r.db.Delete(&models.Session{}, "token = ?", token).Error
}

// DeleteExpired removes sessions that expired before the given time
func (r *SessionRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Delete(&models.Session{}, "expires_at < ?", before)
	return result.RowsAffected, result.Error
}
