package testutils

import (
	"fmt"
	"time"

	"classroom-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	now := time.Now()
	trialEnd := now.AddDate(0, 0, 30)
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                  "Test School",
		Type:                  models.OrganizationTypeSchool,
		Email:                 fmt.Sprintf("admin+%s@test-school.edu", id.String()[:8]),
		Phone:                 "+1-555-0100",
		Address:               "1 Test Street",
		SubscriptionStatus:    models.SubscriptionStatusTrial,
		SubscriptionStartDate: &now,
		SubscriptionEndDate:   &trialEnd,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithEmail sets a custom contact email for the organization
func (f *OrganizationFactory) WithEmail(email string) *models.Organization {
	org := f.Create()
	org.Email = email
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Email is unique per call.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Jordan Doe",
		Email:          fmt.Sprintf("jordan+%s@test-school.edu", id.String()[:8]),
		Role:           models.UserRoleStudent,
		OrganizationID: uuid.New(),
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(orgID uuid.UUID, role models.UserRole) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values. Code is unique per call.
func (f *DepartmentFactory) Create() *models.Department {
	id := uuid.New()
	return &models.Department{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Code:           "DEP-" + id.String()[:8],
		Name:           "Test Department",
		Description:    "A department for testing",
	}
}

// WithOrganization sets the organization ID for the department
func (f *DepartmentFactory) WithOrganization(orgID uuid.UUID) *models.Department {
	dept := f.Create()
	dept.OrganizationID = orgID
	return dept
}

// WithCode sets a custom code for the department
func (f *DepartmentFactory) WithCode(orgID uuid.UUID, code string) *models.Department {
	dept := f.Create()
	dept.OrganizationID = orgID
	dept.Code = code
	return dept
}

// SubjectFactory provides methods to create test Subject data
type SubjectFactory struct{}

// NewSubjectFactory creates a new SubjectFactory
func NewSubjectFactory() *SubjectFactory {
	return &SubjectFactory{}
}

// Create creates a test Subject with default values. Code is unique per call.
func (f *SubjectFactory) Create() *models.Subject {
	id := uuid.New()
	return &models.Subject{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DepartmentID:   uuid.New(),
		OrganizationID: uuid.New(),
		Code:           "SUB-" + id.String()[:8],
		Name:           "Test Subject",
		Description:    "A subject for testing",
	}
}

// WithDepartment sets the department and organization IDs for the subject
func (f *SubjectFactory) WithDepartment(orgID, deptID uuid.UUID) *models.Subject {
	subject := f.Create()
	subject.OrganizationID = orgID
	subject.DepartmentID = deptID
	return subject
}

// ClassFactory provides methods to create test Class data
type ClassFactory struct{}

// NewClassFactory creates a new ClassFactory
func NewClassFactory() *ClassFactory {
	return &ClassFactory{}
}

// Create creates a test Class with default values. Invite code is unique per call.
func (f *ClassFactory) Create() *models.Class {
	id := uuid.New()
	return &models.Class{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SubjectID:      uuid.New(),
		TeacherID:      uuid.New(),
		OrganizationID: uuid.New(),
		InviteCode:     "INV" + id.String()[:8],
		Name:           "Test Class",
		Capacity:       models.DefaultClassCapacity,
		Status:         models.ClassStatusActive,
	}
}

// WithSubject sets the subject, teacher and organization IDs for the class
func (f *ClassFactory) WithSubject(orgID, subjectID, teacherID uuid.UUID) *models.Class {
	class := f.Create()
	class.OrganizationID = orgID
	class.SubjectID = subjectID
	class.TeacherID = teacherID
	return class
}

// WithCapacity sets a custom capacity for the class
func (f *ClassFactory) WithCapacity(orgID, subjectID, teacherID uuid.UUID, capacity int) *models.Class {
	class := f.WithSubject(orgID, subjectID, teacherID)
	class.Capacity = capacity
	return class
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Department   *DepartmentFactory
	Subject      *SubjectFactory
	Class        *ClassFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Department:   NewDepartmentFactory(),
		Subject:      NewSubjectFactory(),
		Class:        NewClassFactory(),
	}
}

// CreateFullTenant creates an organization with a teacher, a student,
// a department, a subject and a class, wired together.
func (fs *FactorySet) CreateFullTenant() (*models.Organization, *models.User, *models.User, *models.Department, *models.Subject, *models.Class) {
	org := fs.Organization.Create()
	teacher := fs.User.WithRole(org.ID, models.UserRoleTeacher)
	student := fs.User.WithRole(org.ID, models.UserRoleStudent)
	dept := fs.Department.WithOrganization(org.ID)
	subject := fs.Subject.WithDepartment(org.ID, dept.ID)
	class := fs.Class.WithSubject(org.ID, subject.ID, teacher.ID)
	return org, teacher, student, dept, subject, class
}
