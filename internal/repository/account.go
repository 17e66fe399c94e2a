package repository

import (
	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for credential accounts
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// GetCredential retrieves the credential-provider account for a user
func (r *AccountRepository) GetCredential(userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "user_id = ? AND provider_id = ?", userID, models.ProviderCredential).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}
