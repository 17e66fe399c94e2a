package models

// OrganizationType defines the kind of institution an organization represents
type OrganizationType string

const (
	OrganizationTypeSchool     OrganizationType = "school"
	OrganizationTypeCollege    OrganizationType = "college"
	OrganizationTypeUniversity OrganizationType = "university"
	OrganizationTypeCoaching   OrganizationType = "coaching"
)

// SubscriptionStatus defines the subscription lifecycle of an organization
type SubscriptionStatus string

const (
	SubscriptionStatusTrial    SubscriptionStatus = "trial"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
)

// UserRole defines the role of a user within its organization
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleTeacher UserRole = "teacher"
	UserRoleStudent UserRole = "student"
)

// ClassStatus defines the lifecycle status of a class
type ClassStatus string

const (
	ClassStatusActive   ClassStatus = "active"
	ClassStatusInactive ClassStatus = "inactive"
	ClassStatusArchived ClassStatus = "archived"
)

// IsValid checks if the OrganizationType is valid
func (t OrganizationType) IsValid() bool {
	switch t {
	case OrganizationTypeSchool, OrganizationTypeCollege, OrganizationTypeUniversity, OrganizationTypeCoaching:
		return true
	}
	return false
}

// IsValid checks if the SubscriptionStatus is valid
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusTrial, SubscriptionStatusActive, SubscriptionStatusInactive, SubscriptionStatusExpired:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleTeacher, UserRoleStudent:
		return true
	}
	return false
}

// IsValid checks if the ClassStatus is valid
func (s ClassStatus) IsValid() bool {
	switch s {
	case ClassStatusActive, ClassStatusInactive, ClassStatusArchived:
		return true
	}
	return false
}
