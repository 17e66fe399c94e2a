package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment associates a student with a class (composite primary key).
// CreatedAt feeds the dashboard enrollment-trend buckets.
type Enrollment struct {
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey"`
	ClassID   uuid.UUID `json:"class_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Student *User  `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Class   *Class `json:"class,omitempty" gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Enrollment
func (Enrollment) TableName() string {
	return "enrollments"
}
