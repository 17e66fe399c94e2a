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

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo      repository.DepartmentRepositoryInterface
	validator *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=50"`
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=255"`
}

// UpdateDepartmentRequest represents the request to update a department
type UpdateDepartmentRequest struct {
	Code        string `json:"code" validate:"omitempty,min=1,max=50"`
	Name        string `json:"name" validate:"omitempty,min=1,max=255"`
	Description string `json:"description" validate:"max=255"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Pagination  Pagination           `json:"pagination"`
}

// Create creates a new department in the caller's organization
func (s *DepartmentService) Create(identity *authz.Identity, req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := authz.Authorize(identity, authz.ActionCreate, authz.ResourceDepartment); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	dept := &models.Department{
		OrganizationID: authz.Scope(identity),
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
	}

	if err := s.repo.Create(dept); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return toDepartmentResponse(dept), nil
}

// GetByID retrieves a department within the caller's organization
func (s *DepartmentService) GetByID(identity *authz.Identity, deptID uuid.UUID) (*DepartmentResponse, error) {
	if err := authz.Authorize(identity, authz.ActionRead, authz.ResourceDepartment); err != nil {
		return nil, err
	}

	dept, err := s.repo.GetScoped(authz.Scope(identity), deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return toDepartmentResponse(dept), nil
}

// List retrieves the organization's departments with search and pagination
func (s *DepartmentService) List(identity *authz.Identity, q ListQuery) (*DepartmentListResponse, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceDepartment); err != nil {
		return nil, err
	}

	depts, total, err := s.repo.List(authz.Scope(identity), q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]DepartmentResponse, len(depts))
	for i := range depts {
		responses[i] = *toDepartmentResponse(&depts[i])
	}

	return &DepartmentListResponse{
		Departments: responses,
		Pagination:  q.pagination(total),
	}, nil
}

// Update updates a department within the caller's organization
func (s *DepartmentService) Update(identity *authz.Identity, deptID uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error) {
	if err := authz.Authorize(identity, authz.ActionUpdate, authz.ResourceDepartment); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	dept, err := s.repo.GetScoped(authz.Scope(identity), deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	if req.Code != "" {
		dept.Code = req.Code
	}
	if req.Name != "" {
		dept.Name = req.Name
	}
	if req.Description != "" {
		dept.Description = req.Description
	}

	if err := s.repo.Update(dept); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	return toDepartmentResponse(dept), nil
}

// Delete removes a department. Departments with subjects still attached are
// protected by the restrict constraint and surface as a dependency error.
func (s *DepartmentService) Delete(identity *authz.Identity, deptID uuid.UUID) error {
	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceDepartment); err != nil {
		return err
	}

	err := s.repo.Delete(authz.Scope(identity), deptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		if apperrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentHasSubjects
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}

	return nil
}

func toDepartmentResponse(dept *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:          dept.ID,
		Code:        dept.Code,
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.Format(time.RFC3339),
	}
}
