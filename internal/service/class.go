package service

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"classroom-backend/internal/authz"
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// inviteCodeAlphabet excludes ambiguous characters (0/O, 1/I/L)
const inviteCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const inviteCodeLength = 8

// maxInviteCodeAttempts bounds retries on invite code collisions
const maxInviteCodeAttempts = 5

// ClassService handles business logic for classes. The parent subject and
// the assigned teacher are both resolved through tenant-scoped lookups, so
// cross-tenant references behave as if the rows did not exist.
type ClassService struct {
	repo           repository.ClassRepositoryInterface
	subjectRepo    repository.SubjectRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	enrollmentRepo repository.EnrollmentRepositoryInterface
	validator      *validator.Validate
}

// NewClassService creates a new class service
func NewClassService(repo repository.ClassRepositoryInterface, subjectRepo repository.SubjectRepositoryInterface, userRepo repository.UserRepositoryInterface, enrollmentRepo repository.EnrollmentRepositoryInterface, validator *validator.Validate) *ClassService {
	return &ClassService{
		repo:           repo,
		subjectRepo:    subjectRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		validator:      validator,
	}
}

// CreateClassRequest represents the request to create a class
type CreateClassRequest struct {
	SubjectID   uuid.UUID       `json:"subject_id" validate:"required"`
	TeacherID   uuid.UUID       `json:"teacher_id" validate:"required"`
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Description string          `json:"description"`
	BannerURL   string          `json:"banner_url" validate:"omitempty,url"`
	Capacity    int             `json:"capacity" validate:"omitempty,min=1,max=1000"`
	Status      string          `json:"status" validate:"omitempty,oneof=active inactive archived"`
	Schedules   json.RawMessage `json:"schedules"`
}

// UpdateClassRequest represents the request to update a class
type UpdateClassRequest struct {
	SubjectID   *uuid.UUID      `json:"subject_id"`
	TeacherID   *uuid.UUID      `json:"teacher_id"`
	Name        string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description string          `json:"description"`
	BannerURL   string          `json:"banner_url" validate:"omitempty,url"`
	Capacity    *int            `json:"capacity" validate:"omitempty,min=1,max=1000"`
	Status      string          `json:"status" validate:"omitempty,oneof=active inactive archived"`
	Schedules   json.RawMessage `json:"schedules"`
}

// ClassResponse represents the response for class operations
type ClassResponse struct {
	ID          uuid.UUID        `json:"id"`
	SubjectID   uuid.UUID        `json:"subject_id"`
	TeacherID   uuid.UUID        `json:"teacher_id"`
	InviteCode  string           `json:"invite_code"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	BannerURL   string           `json:"banner_url,omitempty"`
	Capacity    int              `json:"capacity"`
	Status      string           `json:"status"`
	Schedules   json.RawMessage  `json:"schedules,omitempty"`
	Subject     *SubjectResponse `json:"subject,omitempty"`
	Teacher     *UserResponse    `json:"teacher,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// ClassListResponse represents a paginated list of classes
type ClassListResponse struct {
	Classes    []ClassResponse `json:"classes"`
	Pagination Pagination      `json:"pagination"`
}

// Create creates a new class with a server-generated invite code
func (s *ClassService) Create(identity *authz.Identity, req *CreateClassRequest) (*ClassResponse, error) {
	if err := authz.Authorize(identity, authz.ActionCreate, authz.ResourceClass); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	if _, err := s.subjectRepo.GetScoped(authz.Scope(identity), req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	if err := s.checkTeacher(identity, req.TeacherID); err != nil {
		return nil, err
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = models.DefaultClassCapacity
	}
	status := models.ClassStatusActive
	if req.Status != "" {
		status = models.ClassStatus(req.Status)
	}

	class := &models.Class{
		SubjectID:      req.SubjectID,
		TeacherID:      req.TeacherID,
		OrganizationID: authz.Scope(identity),
		Name:           req.Name,
		Description:    req.Description,
		BannerURL:      req.BannerURL,
		Capacity:       capacity,
		Status:         status,
		Schedules:      datatypes.JSON(req.Schedules),
	}

	// Invite codes are random; regenerate on the rare collision
	var err error
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		class.InviteCode, err = generateInviteCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate invite code: %w", err)
		}
		err = s.repo.Create(class)
		if err == nil || !apperrors.IsUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("class", "with this invite code")
		}
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	return toClassResponse(class), nil
}

// GetByID retrieves a class within the caller's organization
func (s *ClassService) GetByID(identity *authz.Identity, classID uuid.UUID) (*ClassResponse, error) {
	if err := authz.Authorize(identity, authz.ActionRead, authz.ResourceClass); err != nil {
		return nil, err
	}

	class, err := s.repo.GetScoped(authz.Scope(identity), classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	return toClassResponse(class), nil
}

// List retrieves the organization's classes with optional subject and status
// filters, search and pagination
func (s *ClassService) List(identity *authz.Identity, subjectID *uuid.UUID, status string, q ListQuery) (*ClassListResponse, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceClass); err != nil {
		return nil, err
	}

	var statusFilter models.ClassStatus
	if status != "" {
		statusFilter = models.ClassStatus(status)
		if !statusFilter.IsValid() {
			return nil, apperrors.NewValidationError("status", "must be one of: active, inactive, archived")
		}
	}

	classes, total, err := s.repo.List(authz.Scope(identity), subjectID, statusFilter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	responses := make([]ClassResponse, len(classes))
	for i := range classes {
		responses[i] = *toClassResponse(&classes[i])
	}

	return &ClassListResponse{
		Classes:    responses,
		Pagination: q.pagination(total),
	}, nil
}

// Update updates a class. Reassigning the subject or teacher re-checks that
// the new reference belongs to the caller's organization.
func (s *ClassService) Update(identity *authz.Identity, classID uuid.UUID, req *UpdateClassRequest) (*ClassResponse, error) {
	if err := authz.Authorize(identity, authz.ActionUpdate, authz.ResourceClass); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	class, err := s.repo.GetScoped(authz.Scope(identity), classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	if req.SubjectID != nil && *req.SubjectID != class.SubjectID {
		if _, err := s.subjectRepo.GetScoped(authz.Scope(identity), *req.SubjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSubjectNotFound
			}
			return nil, fmt.Errorf("failed to get subject: %w", err)
		}
		class.SubjectID = *req.SubjectID
		class.Subject = nil
	}
	if req.TeacherID != nil && *req.TeacherID != class.TeacherID {
		if err := s.checkTeacher(identity, *req.TeacherID); err != nil {
			return nil, err
		}
		class.TeacherID = *req.TeacherID
		class.Teacher = nil
	}

	if req.Name != "" {
		class.Name = req.Name
	}
	if req.Description != "" {
		class.Description = req.Description
	}
	if req.BannerURL != "" {
		class.BannerURL = req.BannerURL
	}
	if req.Capacity != nil {
		// Capacity may never drop below the seats already taken
		enrolled, err := s.enrollmentRepo.CountByClass(classID)
		if err != nil {
			return nil, fmt.Errorf("failed to count enrollments: %w", err)
		}
		if int64(*req.Capacity) < enrolled {
			return nil, apperrors.NewValidationError("capacity",
				fmt.Sprintf("cannot be less than current enrollment (%d)", enrolled))
		}
		class.Capacity = *req.Capacity
	}
	if req.Status != "" {
		class.Status = models.ClassStatus(req.Status)
	}
	if req.Schedules != nil {
		class.Schedules = datatypes.JSON(req.Schedules)
	}

	if err := s.repo.Update(class); err != nil {
		return nil, fmt.Errorf("failed to update class: %w", err)
	}

	return toClassResponse(class), nil
}

// Delete removes a class and, through the cascade, its enrollments
func (s *ClassService) Delete(identity *authz.Identity, classID uuid.UUID) error {
	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceClass); err != nil {
		return err
	}

	err := s.repo.Delete(authz.Scope(identity), classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClassNotFound
		}
		return fmt.Errorf("failed to delete class: %w", err)
	}

	return nil
}

// checkTeacher verifies that the id references a teacher in the caller's organization
func (s *ClassService) checkTeacher(identity *authz.Identity, teacherID uuid.UUID) error {
	teacher, err := s.userRepo.GetScoped(authz.Scope(identity), teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get teacher: %w", err)
	}
	if teacher.Role != models.UserRoleTeacher {
		return apperrors.NewValidationError("teacher_id", "must reference a teacher")
	}
	return nil
}

func generateInviteCode() (string, error) {
	code := make([]byte, inviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCodeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

func toClassResponse(class *models.Class) *ClassResponse {
	resp := &ClassResponse{
		ID:          class.ID,
		SubjectID:   class.SubjectID,
		TeacherID:   class.TeacherID,
		InviteCode:  class.InviteCode,
		Name:        class.Name,
		Description: class.Description,
		BannerURL:   class.BannerURL,
		Capacity:    class.Capacity,
		Status:      string(class.Status),
		Schedules:   json.RawMessage(class.Schedules),
		CreatedAt:   class.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   class.UpdatedAt.Format(time.RFC3339),
	}
	if class.Subject != nil {
		resp.Subject = toSubjectResponse(class.Subject)
	}
	if class.Teacher != nil {
		resp.Teacher = toUserResponse(class.Teacher)
	}
	return resp
}
