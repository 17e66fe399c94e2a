package repository

import (
	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var subjectSortFields = map[string]string{
	"code":       "subjects.code",
	"name":       "subjects.name",
	"created_at": "subjects.created_at",
}

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create creates a new subject
func (r *SubjectRepository) Create(subject *models.Subject) error {
	return r.db.Create(subject).Error
}

// GetScoped retrieves a subject by ID within the given organization, with its department
func (r *SubjectRepository) GetScoped(orgID, id uuid.UUID) (*models.Subject, error) {
	var subject models.Subject
	err := r.db.Preload("Department").
		First(&subject, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// List retrieves subjects of an organization, optionally filtered by
// department name, with search on name or code
func (r *SubjectRepository) List(orgID uuid.UUID, departmentName string, opts ListOptions) ([]models.Subject, int64, error) {
	var subjects []models.Subject
	var total int64

	q := r.db.Model(&models.Subject{}).Where("subjects.organization_id = ?", orgID)

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		q = q.Where("subjects.name ILIKE ? OR subjects.code ILIKE ?", pattern, pattern)
	}
	if departmentName != "" {
		q = q.Joins("JOIN departments ON departments.id = subjects.department_id").
			Where("departments.name ILIKE ?", "%"+departmentName+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Department").
		Order(orderClause(subjectSortFields, opts)).
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&subjects).Error
	if err != nil {
		return nil, 0, err
	}

	return subjects, total, nil
}

// Update updates a subject
func (r *SubjectRepository) Update(subject *models.Subject) error {
	return r.db.Save(subject).Error
}

// Delete removes a subject within the given organization. The RESTRICT
// constraint on classes surfaces as a foreign-key violation here.
func (r *SubjectRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Subject{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
