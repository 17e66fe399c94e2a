package models

import "github.com/google/uuid"

// User represents an account scoped to exactly one organization.
// OrganizationID is immutable after creation; the role "admin" is only ever
// assigned by the organization provisioning workflow.
type User struct {
	BaseModel
	Name           string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	EmailVerified  bool      `json:"email_verified" gorm:"not null;default:false"`
	Image          string    `json:"image" gorm:"type:text"`
	Role           UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'student'" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Sessions           []Session           `json:"sessions,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Accounts           []Account           `json:"accounts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TeacherDepartments []TeacherDepartment `json:"teacher_departments,omitempty" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE"`
	Enrollments        []Enrollment        `json:"enrollments,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
