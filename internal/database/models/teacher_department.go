package models

import (
	"time"

	"github.com/google/uuid"
)

// TeacherDepartment associates a teacher with a department (many-to-many)
type TeacherDepartment struct {
	TeacherID    uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey"`
	DepartmentID uuid.UUID `json:"department_id" gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Teacher    *User       `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE"`
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeacherDepartment
func (TeacherDepartment) TableName() string {
	return "teacher_departments"
}
