package repository

import (
	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByEmail retrieves an organization by contact email
func (r *OrganizationRepository) GetByEmail(email string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	return r.db.Save(org).Error
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}

// ProvisionWithAdmin inserts the organization, its founding admin user and the
// admin's credential account in a single transaction. A failure at any step
// rolls back everything, so no orphaned organization rows are left behind.
func (r *OrganizationRepository) ProvisionWithAdmin(org *models.Organization, admin *models.User, account *models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		admin.OrganizationID = org.ID
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		account.UserID = admin.ID
		account.AccountID = admin.ID.String()
		return tx.Create(account).Error
	})
}
