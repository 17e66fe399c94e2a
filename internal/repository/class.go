package repository

import (
	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var classSortFields = map[string]string{
	"name":       "name",
	"capacity":   "capacity",
	"status":     "status",
	"created_at": "created_at",
}

// ClassRepository handles database operations for classes
type ClassRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create creates a new class
func (r *ClassRepository) Create(class *models.Class) error {
	return r.db.Create(class).Error
}

// GetScoped retrieves a class by ID within the given organization, with its
// subject and teacher
func (r *ClassRepository) GetScoped(orgID, id uuid.UUID) (*models.Class, error) {
	var class models.Class
	err := r.db.Preload("Subject").Preload("Teacher").
		First(&class, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// GetByInviteCode retrieves a class by its unique invite code
func (r *ClassRepository) GetByInviteCode(code string) (*models.Class, error) {
	var class models.Class
	err := r.db.First(&class, "invite_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// List retrieves classes of an organization with optional subject and status filters
func (r *ClassRepository) List(orgID uuid.UUID, subjectID *uuid.UUID, status models.ClassStatus, opts ListOptions) ([]models.Class, int64, error) {
	var classes []models.Class
	var total int64

	q := r.db.Model(&models.Class{}).Where("organization_id = ?", orgID)

	if opts.Search != "" {
		q = q.Where("name ILIKE ?", "%"+opts.Search+"%")
	}
	if subjectID != nil {
		q = q.Where("subject_id = ?", *subjectID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Subject").Preload("Teacher").
		Order(orderClause(classSortFields, opts)).
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&classes).Error
	if err != nil {
		return nil, 0, err
	}

	return classes, total, nil
}

// Update updates a class
func (r *ClassRepository) Update(class *models.Class) error {
	return r.db.Save(class).Error
}

// Delete removes a class within the given organization
func (r *ClassRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Class{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
