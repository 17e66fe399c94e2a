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

// UserService handles business logic for users within an organization.
// Listings never include admin accounts; an admin row is only ever visible
// to the admin fetching their own profile.
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	Name string `json:"name" validate:"omitempty,min=1,max=255"`
	Role string `json:"role" validate:"omitempty,oneof=teacher student"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	EmailVerified  bool      `json:"email_verified"`
	Image          string    `json:"image,omitempty"`
	Role           string    `json:"role"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// List retrieves the organization's teachers and students. The role filter
// accepts "teacher" or "student"; admins are excluded regardless.
func (s *UserService) List(identity *authz.Identity, role string, q ListQuery) (*UserListResponse, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceUser); err != nil {
		return nil, err
	}

	var roleFilter models.UserRole
	switch role {
	case "":
	case string(models.UserRoleTeacher), string(models.UserRoleStudent):
		roleFilter = models.UserRole(role)
	default:
		return nil, apperrors.NewValidationError("role", "must be teacher or student")
	}

	users, total, err := s.repo.List(authz.Scope(identity), roleFilter, q.options())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}

	return &UserListResponse{
		Users:      responses,
		Pagination: q.pagination(total),
	}, nil
}

// GetByID retrieves a user within the caller's organization. Admin rows are
// hidden unless the caller fetches their own profile.
func (s *UserService) GetByID(identity *authz.Identity, userID uuid.UUID) (*UserResponse, error) {
	if err := authz.Authorize(identity, authz.ActionRead, authz.ResourceUser); err != nil {
		return nil, err
	}

	user, err := s.repo.GetScoped(authz.Scope(identity), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !authz.CanViewUser(identity, user) {
		return nil, apperrors.ErrUserNotFound
	}

	return toUserResponse(user), nil
}

// Update changes a user's name or role. Admin only; the admin role can never
// be granted and admin rows cannot be modified through this path.
func (s *UserService) Update(identity *authz.Identity, userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := authz.Authorize(identity, authz.ActionUpdate, authz.ResourceUser); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if req.Role != "" {
		if err := authz.ValidateRoleAssignment(models.UserRole(req.Role)); err != nil {
			return nil, err
		}
	}

	user, err := s.repo.GetScoped(authz.Scope(identity), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Role == models.UserRoleAdmin {
		return nil, apperrors.ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = models.UserRole(req.Role)
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return toUserResponse(user), nil
}

// Delete removes a user from the caller's organization. Admin only; admin
// rows are never deletable through this path.
func (s *UserService) Delete(identity *authz.Identity, userID uuid.UUID) error {
	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceUser); err != nil {
		return err
	}

	err := s.repo.Delete(authz.Scope(identity), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		if apperrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserHasAssociations
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		EmailVerified:  user.EmailVerified,
		Image:          user.Image,
		Role:           string(user.Role),
		OrganizationID: user.OrganizationID,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      user.UpdatedAt.Format(time.RFC3339),
	}
}
