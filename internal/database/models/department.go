package models

import "github.com/google/uuid"

// Department groups subjects within an organization.
// The code is unique per organization, not globally.
type Department struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_departments_code_org;index" validate:"required"`
	Code           string    `json:"code" gorm:"uniqueIndex:idx_departments_code_org;not null;size:50" validate:"required,min=1,max=50"`
	Name           string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description    string    `json:"description" gorm:"size:255" validate:"max=255"`

	// Subjects reference departments with RESTRICT so a department cannot be
	// deleted while subjects still point at it.
	Subjects []Subject           `json:"subjects,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
	Teachers []TeacherDepartment `json:"teachers,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
