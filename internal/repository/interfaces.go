package repository

import (
	"time"

	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ListOptions carries the common list query parameters: free-text search,
// sorting and pagination. Sort fields are whitelisted per repository.
type ListOptions struct {
	Search    string
	SortField string
	SortOrder string
	Limit     int
	Offset    int
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByEmail(email string) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	ProvisionWithAdmin(org *models.Organization, admin *models.User, account *models.Account) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateWithAccount(user *models.User, account *models.Account) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetScoped(orgID, id uuid.UUID) (*models.User, error)
	List(orgID uuid.UUID, role models.UserRole, opts ListOptions) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(orgID, id uuid.UUID) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
	DeleteExpired(before time.Time) (int64, error)
}

// AccountRepositoryInterface defines the interface for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetCredential(userID uuid.UUID) (*models.Account, error)
}

// DepartmentRepositoryInterface defines the interface for department repository operations.
// Every read and write is scoped by organization id.
type DepartmentRepositoryInterface interface {
	Create(dept *models.Department) error
	GetScoped(orgID, id uuid.UUID) (*models.Department, error)
	List(orgID uuid.UUID, opts ListOptions) ([]models.Department, int64, error)
	Update(dept *models.Department) error
	Delete(orgID, id uuid.UUID) error
}

// SubjectRepositoryInterface defines the interface for subject repository operations
type SubjectRepositoryInterface interface {
	Create(subject *models.Subject) error
	GetScoped(orgID, id uuid.UUID) (*models.Subject, error)
	List(orgID uuid.UUID, departmentName string, opts ListOptions) ([]models.Subject, int64, error)
	Update(subject *models.Subject) error
	Delete(orgID, id uuid.UUID) error
}

// ClassRepositoryInterface defines the interface for class repository operations
type ClassRepositoryInterface interface {
	Create(class *models.Class) error
	GetScoped(orgID, id uuid.UUID) (*models.Class, error)
	GetByInviteCode(code string) (*models.Class, error)
	List(orgID uuid.UUID, subjectID *uuid.UUID, status models.ClassStatus, opts ListOptions) ([]models.Class, int64, error)
	Update(class *models.Class) error
	Delete(orgID, id uuid.UUID) error
}

// EnrollmentRepositoryInterface defines the interface for enrollment repository operations
type EnrollmentRepositoryInterface interface {
	Enroll(studentID, classID uuid.UUID) (*models.Enrollment, error)
	Unenroll(studentID, classID uuid.UUID) error
	ListStudentsByClass(classID uuid.UUID) ([]models.User, error)
	CountByClass(classID uuid.UUID) (int64, error)
}

// DashboardRepositoryInterface defines the interface for tenant-scoped aggregate queries
type DashboardRepositoryInterface interface {
	Stats(orgID uuid.UUID) (*DashboardStats, error)
	ClassesByDepartment(orgID uuid.UUID) ([]NameCount, error)
	UserDistribution(orgID uuid.UUID) ([]NameCount, error)
	CapacityStatus(orgID uuid.UUID) ([]ClassCapacity, error)
	EnrollmentTrends(orgID uuid.UUID, months int) ([]MonthCount, error)
}
