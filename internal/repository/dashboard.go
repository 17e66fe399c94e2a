package repository

import (
	"time"

	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardStats holds tenant-scoped entity counts
type DashboardStats struct {
	Users       int64 `json:"users"`
	Classes     int64 `json:"classes"`
	Enrollments int64 `json:"enrollments"`
	Subjects    int64 `json:"subjects"`
}

// NameCount is a generic name/count pair for group-by reports
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ClassCapacity pairs a class with its current enrollment count
type ClassCapacity struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Enrolled int64     `json:"enrolled"`
}

// MonthCount buckets a count by month
type MonthCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DashboardRepository runs the tenant-scoped aggregate queries behind the
// dashboard endpoints
type DashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats returns entity counts for an organization. Admin users are excluded
// from the user count, matching the roster views.
func (r *DashboardRepository) Stats(orgID uuid.UUID) (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&models.User{}).
		Where("organization_id = ? AND role <> ?", orgID, models.UserRoleAdmin).
		Count(&stats.Users).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Class{}).
		Where("organization_id = ?", orgID).
		Count(&stats.Classes).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Enrollment{}).
		Joins("JOIN classes ON classes.id = enrollments.class_id").
		Where("classes.organization_id = ?", orgID).
		Count(&stats.Enrollments).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Subject{}).
		Where("organization_id = ?", orgID).
		Count(&stats.Subjects).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// ClassesByDepartment counts classes grouped by department name
func (r *DashboardRepository) ClassesByDepartment(orgID uuid.UUID) ([]NameCount, error) {
	var rows []NameCount
	err := r.db.Model(&models.Department{}).
		Select("departments.name AS name, COUNT(classes.id) AS count").
		Joins("LEFT JOIN subjects ON subjects.department_id = departments.id").
		Joins("LEFT JOIN classes ON classes.subject_id = subjects.id").
		Where("departments.organization_id = ?", orgID).
		Group("departments.id, departments.name").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UserDistribution counts non-admin users grouped by role
func (r *DashboardRepository) UserDistribution(orgID uuid.UUID) ([]NameCount, error) {
	var rows []NameCount
	err := r.db.Model(&models.User{}).
		Select("role AS name, COUNT(*) AS count").
		Where("organization_id = ? AND role <> ?", orgID, models.UserRoleAdmin).
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CapacityStatus returns every class of the organization with its enrollment count
func (r *DashboardRepository) CapacityStatus(orgID uuid.UUID) ([]ClassCapacity, error) {
	var rows []ClassCapacity
	err := r.db.Model(&models.Class{}).
		Select("classes.id, classes.name, classes.capacity, COUNT(enrollments.class_id) AS enrolled").
		Joins("LEFT JOIN enrollments ON enrollments.class_id = classes.id").
		Where("classes.organization_id = ?", orgID).
		Group("classes.id, classes.name, classes.capacity").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// EnrollmentTrends buckets enrollments of the last n months by month
func (r *DashboardRepository) EnrollmentTrends(orgID uuid.UUID, months int) ([]MonthCount, error) {
	since := time.Now().AddDate(0, -months, 0)

	var rows []MonthCount
	err := r.db.Model(&models.Enrollment{}).
		Select("to_char(date_trunc('month', enrollments.created_at), 'Mon') AS name, COUNT(*) AS count").
		Joins("JOIN classes ON classes.id = enrollments.class_id").
		Where("classes.organization_id = ? AND enrollments.created_at >= ?", orgID, since).
		Group("date_trunc('month', enrollments.created_at)").
		Order("date_trunc('month', enrollments.created_at) ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
