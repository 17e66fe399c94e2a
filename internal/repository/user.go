package repository

import (
	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userSortFields whitelists the columns a user list may be sorted by
var userSortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithAccount inserts the user and their credential account in one transaction
func (r *UserRepository) CreateWithAccount(user *models.User, account *models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		account.UserID = user.ID
		account.AccountID = user.ID.String()
		return tx.Create(account).Error
	})
}

// GetByID retrieves a user by ID without tenant scoping (auth paths only)
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email (global unique)
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetScoped retrieves a user by ID within the given organization
func (r *UserRepository) GetScoped(orgID, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users of an organization with search, role filter, sorting
// and pagination. Admin rows are always excluded; the visibility policy for
// them lives in the authz package.
func (r *UserRepository) List(orgID uuid.UUID, role models.UserRole, opts ListOptions) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	q := r.db.Model(&models.User{}).
		Where("organization_id = ?", orgID).
		Where("role <> ?", models.UserRoleAdmin)

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if role == models.UserRoleTeacher || role == models.UserRoleStudent {
		q = q.Where("role = ?", role)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order(orderClause(userSortFields, opts)).
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a non-admin user within the given organization
func (r *UserRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.User{},
		"id = ? AND organization_id = ? AND role <> ?", id, orgID, models.UserRoleAdmin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
