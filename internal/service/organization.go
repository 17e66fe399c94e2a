package service

import (
	"errors"
	"fmt"
	"time"

	"classroom-backend/internal/authz"
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations. Organizations
// are created through the sign-up provisioning workflow only; this service
// covers reads by the organization's own members.
type OrganizationService struct {
	repo repository.OrganizationRepositoryInterface
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface) *OrganizationService {
	return &OrganizationService{repo: repo}
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone,omitempty"`
	Address               string    `json:"address,omitempty"`
	Logo                  string    `json:"logo,omitempty"`
	SubscriptionStatus    string    `json:"subscription_status"`
	SubscriptionStartDate string    `json:"subscription_start_date,omitempty"`
	SubscriptionEndDate   string    `json:"subscription_end_date,omitempty"`
	CreatedAt             string    `json:"created_at"`
	UpdatedAt             string    `json:"updated_at"`
}

// GetByID retrieves an organization. Members may only fetch their own
// organization; a cross-tenant id is rejected as forbidden.
func (s *OrganizationService) GetByID(identity *authz.Identity, orgID uuid.UUID) (*OrganizationResponse, error) {
	if err := authz.Authorize(identity, authz.ActionRead, authz.ResourceOrganization); err != nil {
		return nil, err
	}
	if err := authz.CanAccessOrganization(identity, orgID); err != nil {
		return nil, err
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return toOrganizationResponse(org), nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	resp := &OrganizationResponse{
		ID:                 org.ID,
		Name:               org.Name,
		Type:               string(org.Type),
		Email:              org.Email,
		Phone:              org.Phone,
		Address:            org.Address,
		Logo:               org.Logo,
		SubscriptionStatus: string(org.SubscriptionStatus),
		CreatedAt:          org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          org.UpdatedAt.Format(time.RFC3339),
	}
	if org.SubscriptionStartDate != nil {
		resp.SubscriptionStartDate = org.SubscriptionStartDate.Format(time.RFC3339)
	}
	if org.SubscriptionEndDate != nil {
		resp.SubscriptionEndDate = org.SubscriptionEndDate.Format(time.RFC3339)
	}
	return resp
}
