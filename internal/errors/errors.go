package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a unique-constraint conflict
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FieldError describes a single failed field inside a ValidationError
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError represents malformed or missing input, itemized per field
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// AuthenticationError represents a missing or invalid session (401)
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents an authenticated but not permitted request (403)
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// CapacityError represents a business-rule rejection when a class is full
type CapacityError struct {
	Entity   string
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s is at capacity (%d)", e.Entity, e.Capacity)
}

// Is enables errors.Is() comparison for CapacityError
func (e *CapacityError) Is(target error) bool {
	_, ok := target.(*CapacityError)
	return ok
}

// DependencyError represents a restrict-on-delete violation: the row cannot
// be removed while dependent rows still reference it
type DependencyError struct {
	Entity    string
	Dependent string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("cannot delete %s with existing %s", e.Entity, e.Dependent)
}

// Is enables errors.Is() comparison for DependencyError
func (e *DependencyError) Is(target error) bool {
	t, ok := target.(*DependencyError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrDepartmentNotFound   = &NotFoundError{Entity: "department"}
	ErrSubjectNotFound      = &NotFoundError{Entity: "subject"}
	ErrClassNotFound        = &NotFoundError{Entity: "class"}
	ErrEnrollmentNotFound   = &NotFoundError{Entity: "enrollment"}
	ErrSessionNotFound      = &NotFoundError{Entity: "session"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this email"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrDepartmentExists   = &AlreadyExistsError{Entity: "department", Context: "with this code in the organization"}
	ErrSubjectExists      = &AlreadyExistsError{Entity: "subject", Context: "with this code in the organization"}
	ErrEnrollmentExists   = &AlreadyExistsError{Entity: "enrollment", Context: "for this student and class"}
)

// Dependency Errors
var (
	ErrDepartmentHasSubjects = &DependencyError{Entity: "department", Dependent: "subjects"}
	ErrSubjectHasClasses     = &DependencyError{Entity: "subject", Dependent: "classes"}
	ErrUserHasAssociations   = &DependencyError{Entity: "user", Dependent: "classes or enrollments"}
)

// Authentication / Authorization Errors
var (
	ErrUnauthenticated    = &AuthenticationError{Message: "authentication required"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrSessionExpired     = &AuthenticationError{Message: "session has expired"}
	ErrForbidden          = &AuthorizationError{Message: "forbidden"}
	ErrAdminRoleReserved  = &AuthorizationError{Message: "role admin cannot be assigned"}
	ErrAdminOnly          = &AuthorizationError{Message: "only admins can perform this action"}
	ErrCrossTenant        = &AuthorizationError{Message: "resource belongs to another organization"}
)

// Postgres error codes surfaced through pgconn
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsCapacity checks if an error is a CapacityError
func IsCapacity(err error) bool {
	var capErr *CapacityError
	return errors.As(err, &capErr)
}

// IsDependency checks if an error is a DependencyError
func IsDependency(err error) bool {
	var depErr *DependencyError
	return errors.As(err, &depErr)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsForeignKeyViolation reports whether err is a Postgres foreign-key violation
// (both missing parents on insert and restrict-on-delete surface this code)
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a ValidationError with a single field
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors creates a ValidationError with multiple fields
func NewValidationErrors(fields []FieldError) error {
	return &ValidationError{Fields: fields}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewCapacityError creates a new CapacityError
func NewCapacityError(entity string, capacity int) error {
	return &CapacityError{Entity: entity, Capacity: capacity}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
