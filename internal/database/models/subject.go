package models

import "github.com/google/uuid"

// Subject belongs to a department and is offered as one or more classes.
// Its organization must always equal the parent department's organization;
// the services enforce this since there is no database constraint for it.
type Subject struct {
	BaseModel
	DepartmentID   uuid.UUID `json:"department_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_subjects_code_org;index" validate:"required"`
	Code           string    `json:"code" gorm:"uniqueIndex:idx_subjects_code_org;not null;size:50" validate:"required,min=1,max=50"`
	Name           string    `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description    string    `json:"description" gorm:"size:255" validate:"max=255"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	// Classes reference subjects with RESTRICT so a subject cannot be deleted
	// while classes still point at it.
	Classes []Class `json:"classes,omitempty" gorm:"foreignKey:SubjectID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Subject
func (Subject) TableName() string {
	return "subjects"
}
