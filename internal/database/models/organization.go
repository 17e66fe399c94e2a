package models

import "time"

// Organization represents the root entity for multi-tenancy. Every other
// domain row traces to exactly one organization, directly or transitively.
type Organization struct {
	BaseModel
	Name    string           `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	Type    OrganizationType `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	Email   string           `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Phone   string           `json:"phone" gorm:"size:50"`
	Address string           `json:"address" gorm:"type:text"`
	Logo    string           `json:"logo" gorm:"type:text"`

	SubscriptionStatus    SubscriptionStatus `json:"subscription_status" gorm:"type:varchar(20);not null;default:'trial'"`
	SubscriptionStartDate *time.Time         `json:"subscription_start_date"`
	SubscriptionEndDate   *time.Time         `json:"subscription_end_date"`

	// Relationships
	Users       []User       `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Departments []Department `json:"departments,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Subjects    []Subject    `json:"subjects,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Classes     []Class      `json:"classes,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
