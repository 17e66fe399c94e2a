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

// SubjectService handles business logic for subjects. A subject always lives
// in the same organization as its parent department; the parent is looked up
// through the tenant-scoped department repository so a cross-tenant
// department id behaves as if it did not exist.
type SubjectService struct {
	repo      repository.SubjectRepositoryInterface
	deptRepo  repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

// NewSubjectService creates a new subject service
func NewSubjectService(repo repository.SubjectRepositoryInterface, deptRepo repository.DepartmentRepositoryInterface, validator *validator.Validate) *SubjectService {
	return &SubjectService{
		repo:      repo,
		deptRepo:  deptRepo,
		validator: validator,
	}
}

// CreateSubjectRequest represents the request to create a subject
type CreateSubjectRequest struct {
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	Code         string    `json:"code" validate:"required,min=1,max=50"`
	Name         string    `json:"name" validate:"required,min=1,max=255"`
	Description  string    `json:"description" validate:"max=255"`
}

// UpdateSubjectRequest represents the request to update a subject
type UpdateSubjectRequest struct {
	DepartmentID *uuid.UUID `json:"department_id"`
	Code         string     `json:"code" validate:"omitempty,min=1,max=50"`
	Name         string     `json:"name" validate:"omitempty,min=1,max=255"`
	Description  string     `json:"description" validate:"max=255"`
}

// SubjectResponse represents the response for subject operations
type SubjectResponse struct {
	ID           uuid.UUID           `json:"id"`
	DepartmentID uuid.UUID           `json:"department_id"`
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	Department   *DepartmentResponse `json:"department,omitempty"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

// SubjectListResponse represents a paginated list of subjects
type SubjectListResponse struct {
	Subjects   []SubjectResponse `json:"subjects"`
	Pagination Pagination        `json:"pagination"`
}

// Create creates a new subject under a department of the caller's organization
func (s *SubjectService) Create(identity *authz.Identity, req *CreateSubjectRequest) (*SubjectResponse, error) {
	if err := authz.Authorize(identity, authz.ActionCreate, authz.ResourceSubject); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	if _, err := s.deptRepo.GetScoped(authz.Scope(identity), req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	subject := &models.Subject{
		DepartmentID:   req.DepartmentID,
		OrganizationID: authz.Scope(identity),
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
	}

	if err := s.repo.Create(subject); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubjectExists
		}
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	return toSubjectResponse(subject), nil
}

// GetByID retrieves a subject within the caller's organization
func (s *SubjectService) GetByID(identity *authz.Identity, subjectID uuid.UUID) (*SubjectResponse, error) {
	if err := authz.Authorize(identity, authz.ActionRead, authz.ResourceSubject); err != nil {
		return nil, err
	}

	subject, err := s.repo.GetScoped(authz.Scope(identity), subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}

	return toSubjectResponse(subject), nil
}

// List retrieves the organization's subjects, optionally filtered by
// department name, with search and pagination
func (s *SubjectService) List(identity *authz.Identity, departmentName string, q ListQuery) (*SubjectListResponse, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceSubject); err != nil {
		return nil, err
	}

	subjects, total, err := s.repo.List(authz.Scope(identity), departmentName, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	responses := make([]SubjectResponse, len(subjects))
	for i := range subjects {
		responses[i] = *toSubjectResponse(&subjects[i])
	}

	return &SubjectListResponse{
		Subjects:   responses,
		Pagination: q.pagination(total),
	}, nil
}

// Update updates a subject. Moving it to another department re-checks that
// the target department belongs to the caller's organization.
func (s *SubjectService) Update(identity *authz.Identity, subjectID uuid.UUID, req *UpdateSubjectRequest) (*SubjectResponse, error) {
	if err := authz.Authorize(identity, authz.ActionUpdate, authz.ResourceSubject); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	subject, err := s.repo.GetScoped(authz.Scope(identity), subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}

	if req.DepartmentID != nil && *req.DepartmentID != subject.DepartmentID {
		if _, err := s.deptRepo.GetScoped(authz.Scope(identity), *req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("failed to get department: %w", err)
		}
		subject.DepartmentID = *req.DepartmentID
		subject.Department = nil
	}

	if req.Code != "" {
		subject.Code = req.Code
	}
	if req.Name != "" {
		subject.Name = req.Name
	}
	if req.Description != "" {
		subject.Description = req.Description
	}

	if err := s.repo.Update(subject); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrSubjectExists
		}
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}

	return toSubjectResponse(subject), nil
}

// Delete removes a subject. Subjects with classes still attached are
// protected by the restrict constraint and surface as a dependency error.
func (s *SubjectService) Delete(identity *authz.Identity, subjectID uuid.UUID) error {
	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceSubject); err != nil {
		return err
	}

	err := s.repo.Delete(authz.Scope(identity), subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubjectNotFound
		}
		if apperrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSubjectHasClasses
		}
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	return nil
}

func toSubjectResponse(subject *models.Subject) *SubjectResponse {
	resp := &SubjectResponse{
		ID:           subject.ID,
		DepartmentID: subject.DepartmentID,
		Code:         subject.Code,
		Name:         subject.Name,
		Description:  subject.Description,
		CreatedAt:    subject.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    subject.UpdatedAt.Format(time.RFC3339),
	}
	if subject.Department != nil {
		resp.Department = toDepartmentResponse(subject.Department)
	}
	return resp
}
