package repository

import (
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Enroll inserts an enrollment after checking class capacity. The class row
// is locked FOR UPDATE so the count-then-insert sequence is atomic against
// concurrent enrollments into the same class.
func (r *EnrollmentRepository) Enroll(studentID, classID uuid.UUID) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{StudentID: studentID, ClassID: classID}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&class, "id = ?", classID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Enrollment{}).
			Where("class_id = ?", classID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(class.Capacity) {
			return apperrors.NewCapacityError("class", class.Capacity)
		}

		return tx.Create(enrollment).Error
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// Unenroll removes the enrollment for a student and class
func (r *EnrollmentRepository) Unenroll(studentID, classID uuid.UUID) error {
	result := r.db.Delete(&models.Enrollment{},
		"student_id = ? AND class_id = ?", studentID, classID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListStudentsByClass returns the users enrolled in a class
func (r *EnrollmentRepository) ListStudentsByClass(classID uuid.UUID) ([]models.User, error) {
	var students []models.User
	err := r.db.Model(&models.User{}).
		Joins("JOIN enrollments ON enrollments.student_id = users.id").
		Where("enrollments.class_id = ?", classID).
		Order("users.name ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// CountByClass returns the number of enrollments for a class
func (r *EnrollmentRepository) CountByClass(classID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	return count, err
}
