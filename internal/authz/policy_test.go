package authz

import (
	"testing"

	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func identityWithRole(role models.UserRole) *Identity {
	return &Identity{
		UserID:         uuid.New(),
		Role:           role,
		OrganizationID: uuid.New(),
	}
}

func TestAuthorize(t *testing.T) {
	admin := identityWithRole(models.UserRoleAdmin)
	teacher := identityWithRole(models.UserRoleTeacher)
	student := identityWithRole(models.UserRoleStudent)

	tests := []struct {
		name     string
		identity *Identity
		action   Action
		resource Resource
		wantErr  error
	}{
		{"nil identity", nil, ActionRead, ResourceClass, apperrors.ErrUnauthenticated},
		{"admin updates user", admin, ActionUpdate, ResourceUser, nil},
		{"admin deletes user", admin, ActionDelete, ResourceUser, nil},
		{"teacher updates user", teacher, ActionUpdate, ResourceUser, apperrors.ErrAdminOnly},
		{"student deletes user", student, ActionDelete, ResourceUser, apperrors.ErrAdminOnly},
		{"student lists users", student, ActionList, ResourceUser, nil},
		{"teacher reads user", teacher, ActionRead, ResourceUser, nil},
		{"teacher reads organization", teacher, ActionRead, ResourceOrganization, nil},
		{"admin updates organization", admin, ActionUpdate, ResourceOrganization, apperrors.ErrForbidden},
		{"admin deletes organization", admin, ActionDelete, ResourceOrganization, apperrors.ErrForbidden},
		{"student creates department", student, ActionCreate, ResourceDepartment, nil},
		{"teacher creates class", teacher, ActionCreate, ResourceClass, nil},
		{"student enrolls", student, ActionCreate, ResourceEnrollment, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.identity, tt.action, tt.resource)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeRequiresOrganization(t *testing.T) {
	orphan := &Identity{UserID: uuid.New(), Role: models.UserRoleTeacher}

	err := Authorize(orphan, ActionList, ResourceClass)
	assert.Error(t, err)
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestScope(t *testing.T) {
	id := identityWithRole(models.UserRoleTeacher)
	assert.Equal(t, id.OrganizationID, Scope(id))
}

func TestCanAccessOrganization(t *testing.T) {
	id := identityWithRole(models.UserRoleAdmin)

	t.Run("own organization", func(t *testing.T) {
		assert.NoError(t, CanAccessOrganization(id, id.OrganizationID))
	})

	t.Run("another tenant is forbidden, not hidden", func(t *testing.T) {
		err := CanAccessOrganization(id, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrCrossTenant)
		assert.True(t, apperrors.IsAuthorization(err))
		assert.False(t, apperrors.IsNotFound(err))
	})

	t.Run("nil identity", func(t *testing.T) {
		assert.ErrorIs(t, CanAccessOrganization(nil, uuid.New()), apperrors.ErrUnauthenticated)
	})
}

func TestCanViewUser(t *testing.T) {
	caller := identityWithRole(models.UserRoleTeacher)

	sameOrgStudent := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleStudent,
		OrganizationID: caller.OrganizationID,
	}
	otherOrgStudent := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleStudent,
		OrganizationID: uuid.New(),
	}
	sameOrgAdmin := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleAdmin,
		OrganizationID: caller.OrganizationID,
	}

	assert.True(t, CanViewUser(caller, sameOrgStudent))
	assert.False(t, CanViewUser(caller, otherOrgStudent))
	assert.False(t, CanViewUser(caller, sameOrgAdmin), "admin rows are hidden from other users")

	t.Run("admin can view own row", func(t *testing.T) {
		adminCaller := &Identity{
			UserID:         sameOrgAdmin.ID,
			Role:           models.UserRoleAdmin,
			OrganizationID: caller.OrganizationID,
		}
		assert.True(t, CanViewUser(adminCaller, sameOrgAdmin))
	})

	t.Run("nil arguments", func(t *testing.T) {
		assert.False(t, CanViewUser(nil, sameOrgStudent))
		assert.False(t, CanViewUser(caller, nil))
	})
}

func TestValidateRoleAssignment(t *testing.T) {
	assert.NoError(t, ValidateRoleAssignment(models.UserRoleTeacher))
	assert.NoError(t, ValidateRoleAssignment(models.UserRoleStudent))

	err := ValidateRoleAssignment(models.UserRoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrAdminRoleReserved)

	err = ValidateRoleAssignment(models.UserRole("principal"))
	assert.True(t, apperrors.IsValidation(err))
}
