package service

import (
	"classroom-backend/internal/authz"
	"classroom-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	GetByID(identity *authz.Identity, orgID uuid.UUID) (*OrganizationResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	List(identity *authz.Identity, role string, q ListQuery) (*UserListResponse, error)
	GetByID(identity *authz.Identity, userID uuid.UUID) (*UserResponse, error)
	Update(identity *authz.Identity, userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(identity *authz.Identity, userID uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	Create(identity *authz.Identity, req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByID(identity *authz.Identity, deptID uuid.UUID) (*DepartmentResponse, error)
	List(identity *authz.Identity, q ListQuery) (*DepartmentListResponse, error)
	Update(identity *authz.Identity, deptID uuid.UUID, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(identity *authz.Identity, deptID uuid.UUID) error
}

// SubjectServiceInterface defines the interface for subject service
type SubjectServiceInterface interface {
	Create(identity *authz.Identity, req *CreateSubjectRequest) (*SubjectResponse, error)
	GetByID(identity *authz.Identity, subjectID uuid.UUID) (*SubjectResponse, error)
	List(identity *authz.Identity, departmentName string, q ListQuery) (*SubjectListResponse, error)
	Update(identity *authz.Identity, subjectID uuid.UUID, req *UpdateSubjectRequest) (*SubjectResponse, error)
	Delete(identity *authz.Identity, subjectID uuid.UUID) error
}

// ClassServiceInterface defines the interface for class service
type ClassServiceInterface interface {
	Create(identity *authz.Identity, req *CreateClassRequest) (*ClassResponse, error)
	GetByID(identity *authz.Identity, classID uuid.UUID) (*ClassResponse, error)
	List(identity *authz.Identity, subjectID *uuid.UUID, status string, q ListQuery) (*ClassListResponse, error)
	Update(identity *authz.Identity, classID uuid.UUID, req *UpdateClassRequest) (*ClassResponse, error)
	Delete(identity *authz.Identity, classID uuid.UUID) error
}

// EnrollmentServiceInterface defines the interface for enrollment service
type EnrollmentServiceInterface interface {
	Enroll(identity *authz.Identity, req *EnrollRequest) (*EnrollmentResponse, error)
	Unenroll(identity *authz.Identity, studentID, classID uuid.UUID) error
	Roster(identity *authz.Identity, classID uuid.UUID) ([]UserResponse, error)
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Stats(identity *authz.Identity) (*repository.DashboardStats, error)
	ClassesByDepartment(identity *authz.Identity) ([]repository.NameCount, error)
	UserDistribution(identity *authz.Identity) ([]repository.NameCount, error)
	CapacityStatus(identity *authz.Identity) ([]repository.ClassCapacity, error)
	EnrollmentTrends(identity *authz.Identity, months int) ([]repository.MonthCount, error)
}
