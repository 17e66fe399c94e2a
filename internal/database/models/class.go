package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DefaultClassCapacity bounds enrollments when no capacity is given
const DefaultClassCapacity = 50

// Class is a concrete offering of a subject taught by a teacher.
// Capacity bounds the number of enrollments referencing the class.
type Class struct {
	BaseModel
	SubjectID      uuid.UUID      `json:"subject_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeacherID      uuid.UUID      `json:"teacher_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	InviteCode     string         `json:"invite_code" gorm:"uniqueIndex;not null;size:20"`
	Name           string         `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Description    string         `json:"description" gorm:"type:text"`
	BannerURL      string         `json:"banner_url" gorm:"type:text"`
	Capacity       int            `json:"capacity" gorm:"not null;default:50" validate:"min=1"`
	Status         ClassStatus    `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Schedules      datatypes.JSON `json:"schedules" gorm:"type:jsonb"`

	Subject     *Subject     `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Teacher     *User        `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Class
func (Class) TableName() string {
	return "classes"
}
