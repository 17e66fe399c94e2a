package repository

import (
	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var departmentSortFields = map[string]string{
	"code":       "code",
	"name":       "name",
	"created_at": "created_at",
}

// DepartmentRepository handles database operations for departments.
// All queries are tenant-scoped; there is no unscoped accessor.
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(dept *models.Department) error {
	return r.db.Create(dept).Error
}

// GetScoped retrieves a department by ID within the given organization
func (r *DepartmentRepository) GetScoped(orgID, id uuid.UUID) (*models.Department, error) {
	var dept models.Department
	err := r.db.First(&dept, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// List retrieves departments of an organization with search, sorting and pagination
func (r *DepartmentRepository) List(orgID uuid.UUID, opts ListOptions) ([]models.Department, int64, error) {
	var depts []models.Department
	var total int64

	q := r.db.Model(&models.Department{}).Where("organization_id = ?", orgID)
	if opts.Search != "" {
		q = q.Where("name ILIKE ?", "%"+opts.Search+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order(orderClause(departmentSortFields, opts)).
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&depts).Error
	if err != nil {
		return nil, 0, err
	}

	return depts, total, nil
}

// Update updates a department
func (r *DepartmentRepository) Update(dept *models.Department) error {
	return r.db.Save(dept).Error
}

// Delete removes a department within the given organization. The RESTRICT
// constraint on subjects surfaces as a foreign-key violation here.
func (r *DepartmentRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Delete(&models.Department{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
