package service

import (
	"errors"
	"fmt"
	"time"

	"classroom-backend/internal/authz"
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentService handles business logic for enrollments. Both the student
// and the class are resolved through tenant-scoped lookups before the
// capacity-checked insert runs.
type EnrollmentService struct {
	repo      repository.EnrollmentRepositoryInterface
	classRepo repository.ClassRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(repo repository.EnrollmentRepositoryInterface, classRepo repository.ClassRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *EnrollmentService {
	return &EnrollmentService{
		repo:      repo,
		classRepo: classRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// EnrollRequest represents the request to enroll a student into a class
type EnrollRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
}

// EnrollmentResponse represents the response for enrollment operations
type EnrollmentResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	ClassID   uuid.UUID `json:"class_id"`
	CreatedAt string    `json:"created_at"`
}

// Enroll adds a student to a class. The insert is capacity-checked atomically
// in the repository; a full class is rejected and a duplicate enrollment
// conflicts.
func (s *EnrollmentService) Enroll(identity *authz.Identity, req *EnrollRequest) (*EnrollmentResponse, error) {
	if err := authz.Authorize(identity, authz.ActionCreate, authz.ResourceEnrollment); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	if _, err := s.classRepo.GetScoped(authz.Scope(identity), req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	student, err := s.userRepo.GetScoped(authz.Scope(identity), req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if student.Role != models.UserRoleStudent {
		return nil, apperrors.NewValidationError("student_id", "must reference a student")
	}

	enrollment, err := s.repo.Enroll(req.StudentID, req.ClassID)
	if err != nil {
		if apperrors.IsCapacity(err) {
			return nil, err
		}
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEnrollmentExists
		}
		return nil, fmt.Errorf("failed to enroll student: %w", err)
	}

	return &EnrollmentResponse{
		StudentID: enrollment.StudentID,
		ClassID:   enrollment.ClassID,
		CreatedAt: enrollment.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Unenroll removes a student from a class
func (s *EnrollmentService) Unenroll(identity *authz.Identity, studentID, classID uuid.UUID) error {
	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceEnrollment); err != nil {
		return err
	}

	if _, err := s.classRepo.GetScoped(authz.Scope(identity), classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClassNotFound
		}
		return fmt.Errorf("failed to get class: %w", err)
	}

	if err := s.repo.Unenroll(studentID, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("failed to unenroll student: %w", err)
	}

	return nil
}

// Roster lists the students enrolled in a class of the caller's organization
func (s *EnrollmentService) Roster(identity *authz.Identity, classID uuid.UUID) ([]UserResponse, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceEnrollment); err != nil {
		return nil, err
	}

	if _, err := s.classRepo.GetScoped(authz.Scope(identity), classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	students, err := s.repo.ListStudentsByClass(classID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled students: %w", err)
	}

	responses := make([]UserResponse, len(students))
	for i := range students {
		responses[i] = *toUserResponse(&students[i])
	}
	return responses, nil
}
