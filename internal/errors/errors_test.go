package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "class"}
		assert.Equal(t, "class not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "class"}, &NotFoundError{Entity: "class"}))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(&NotFoundError{Entity: "class"}, &NotFoundError{Entity: "subject"}))
	})

	t.Run("wrapped sentinel is still detected", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup failed: %w", ErrClassNotFound)
		assert.True(t, errors.Is(wrapped, ErrClassNotFound))
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "department", Context: "with this code in the organization"}
		assert.Equal(t, "department already exists with this code in the organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "department"}
		assert.Equal(t, "department already exists", err.Error())
	})

	t.Run("errors.Is compares by entity only", func(t *testing.T) {
		withContext := &AlreadyExistsError{Entity: "department", Context: "with this code in the organization"}
		assert.True(t, errors.Is(withContext, &AlreadyExistsError{Entity: "department"}))
		assert.False(t, errors.Is(withContext, &AlreadyExistsError{Entity: "subject"}))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("empty fields", func(t *testing.T) {
		err := &ValidationError{}
		assert.Equal(t, "validation error", err.Error())
	})

	t.Run("itemized fields", func(t *testing.T) {
		err := &ValidationError{Fields: []FieldError{
			{Field: "email", Message: "must be a valid email address"},
			{Field: "name", Message: "is required"},
		}}
		assert.Equal(t, "validation error: email: must be a valid email address; name: is required", err.Error())
	})
}

func TestCapacityError(t *testing.T) {
	err := NewCapacityError("class", 30)
	assert.Equal(t, "class is at capacity (30)", err.Error())
	assert.True(t, IsCapacity(err))
	assert.True(t, IsCapacity(fmt.Errorf("enroll: %w", err)))
	assert.False(t, IsCapacity(ErrClassNotFound))
}

func TestDependencyError(t *testing.T) {
	assert.Equal(t, "cannot delete department with existing subjects", ErrDepartmentHasSubjects.Error())
	assert.Equal(t, "cannot delete subject with existing classes", ErrSubjectHasClasses.Error())
	assert.True(t, IsDependency(ErrUserHasAssociations))
	assert.False(t, IsDependency(ErrUserExists))
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", ErrUserNotFound, IsNotFound, true},
		{"not found wrapped", fmt.Errorf("wrap: %w", ErrOrganizationNotFound), IsNotFound, true},
		{"not found mismatch", ErrUserExists, IsNotFound, false},
		{"already exists", ErrEnrollmentExists, IsAlreadyExists, true},
		{"validation", NewValidationError("role", "must be one of: teacher, student"), IsValidation, true},
		{"authentication", ErrInvalidCredentials, IsAuthentication, true},
		{"authentication mismatch", ErrForbidden, IsAuthentication, false},
		{"authorization", ErrCrossTenant, IsAuthorization, true},
		{"authorization admin reserved", ErrAdminRoleReserved, IsAuthorization, true},
		{"nil", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestPostgresClassifiers(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_departments_code_org"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_subjects_department"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", unique)))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}

func TestFromValidator(t *testing.T) {
	v := validator.New()

	type signUp struct {
		Name  string `validate:"required,min=2"`
		Email string `validate:"required,email"`
		Role  string `validate:"oneof=teacher student"`
	}

	err := v.Struct(signUp{Name: "x", Email: "not-an-email", Role: "admin"})
	converted := FromValidator(err)

	var verr *ValidationError
	assert.True(t, errors.As(converted, &verr))
	assert.Len(t, verr.Fields, 3)

	byField := map[string]string{}
	for _, f := range verr.Fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "must be at least 2 characters", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be one of: teacher, student", byField["role"])
}

func TestFromValidatorNonValidatorError(t *testing.T) {
	assert.Nil(t, FromValidator(nil))

	converted := FromValidator(errors.New("unexpected"))
	var verr *ValidationError
	assert.True(t, errors.As(converted, &verr))
	assert.Equal(t, "unexpected", verr.Fields[0].Message)
}
