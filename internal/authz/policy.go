// Package authz is the single authorization policy for the API. Every handler
// consults it instead of re-implementing role and tenant checks inline, and
// the identity is always passed explicitly rather than read from ambient
// request state.
package authz

import (
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"

	"github.com/google/uuid"
)

// Action is a request's intent against a resource kind
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is the kind of entity a request targets
type Resource string

const (
	ResourceOrganization Resource = "organization"
	ResourceUser         Resource = "user"
	ResourceDepartment   Resource = "department"
	ResourceSubject      Resource = "subject"
	ResourceClass        Resource = "class"
	ResourceEnrollment   Resource = "enrollment"
)

// Identity is the resolved caller: who they are, what role they hold, and
// which organization scopes everything they may touch
type Identity struct {
	UserID         uuid.UUID
	Role           models.UserRole
	OrganizationID uuid.UUID
}

// Authorize decides whether an identity may perform an action on a resource
// kind. It is a pure decision function: tenant scoping of the actual query is
// applied separately via Scope.
func Authorize(id *Identity, action Action, resource Resource) error {
	if id == nil {
		return apperrors.ErrUnauthenticated
	}
	if id.OrganizationID == uuid.Nil {
		return apperrors.NewAuthorizationError("user not associated with any organization")
	}

	switch resource {
	case ResourceUser:
		// Mutating a user requires the admin role; reads are open to all roles
		if action == ActionUpdate || action == ActionDelete {
			if id.Role != models.UserRoleAdmin {
				return apperrors.ErrAdminOnly
			}
		}
	case ResourceOrganization:
		// Organizations are only ever created through provisioning and only
		// read by their own members; Scope covers the tenant check
		if action != ActionRead {
			return apperrors.ErrForbidden
		}
	}

	return nil
}

// Scope returns the organization id every tenant-scoped query must filter by.
// Client-supplied organization ids are never trusted; writes overwrite them
// with this value.
func Scope(id *Identity) uuid.UUID {
	return id.OrganizationID
}

// CanAccessOrganization reports whether the identity may fetch the given
// organization record. Cross-tenant lookups are rejected with Forbidden, not
// NotFound, to distinguish "exists but not yours" from "not found".
func CanAccessOrganization(id *Identity, orgID uuid.UUID) error {
	if id == nil {
		return apperrors.ErrUnauthenticated
	}
	if id.OrganizationID != orgID {
		return apperrors.ErrCrossTenant
	}
	return nil
}

// CanViewUser reports whether the identity may see a user row. Admin rows are
// invisible in staff and roster views, except when the caller fetches their
// own profile.
func CanViewUser(id *Identity, target *models.User) bool {
	if id == nil || target == nil {
		return false
	}
	if target.OrganizationID != id.OrganizationID {
		return false
	}
	if target.Role == models.UserRoleAdmin {
		return target.ID == id.UserID
	}
	return true
}

// ValidateRoleAssignment rejects any attempt to hand out the admin role.
// Provisioning is the only path that creates admins.
func ValidateRoleAssignment(role models.UserRole) error {
	if role == models.UserRoleAdmin {
		return apperrors.ErrAdminRoleReserved
	}
	if !role.IsValid() {
		return apperrors.NewValidationError("role", "must be teacher or student")
	}
	return nil
}
