package service

import (
	"fmt"

	"classroom-backend/internal/authz"
	"classroom-backend/internal/repository"
)

// defaultTrendMonths is the window for the enrollment trend chart
const defaultTrendMonths = 6

// DashboardService serves the tenant-scoped aggregate views behind the
// dashboard. Every query is bound to the caller's organization.
type DashboardService struct {
	repo repository.DashboardRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repository.DashboardRepositoryInterface) *DashboardService {
	return &DashboardService{repo: repo}
}

// Stats returns the organization's entity counts
func (s *DashboardService) Stats(identity *authz.Identity) (*repository.DashboardStats, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceClass); err != nil {
		return nil, err
	}

	stats, err := s.repo.Stats(authz.Scope(identity))
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}

// ClassesByDepartment returns class counts grouped by department
func (s *DashboardService) ClassesByDepartment(identity *authz.Identity) ([]repository.NameCount, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceClass); err != nil {
		return nil, err
	}

	rows, err := s.repo.ClassesByDepartment(authz.Scope(identity))
	if err != nil {
		return nil, fmt.Errorf("failed to get classes by department: %w", err)
	}
	return rows, nil
}

// UserDistribution returns non-admin user counts grouped by role
func (s *DashboardService) UserDistribution(identity *authz.Identity) ([]repository.NameCount, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceUser); err != nil {
		return nil, err
	}

	rows, err := s.repo.UserDistribution(authz.Scope(identity))
	if err != nil {
		return nil, fmt.Errorf("failed to get user distribution: %w", err)
	}
	return rows, nil
}

// CapacityStatus returns per-class enrollment counts against capacity
func (s *DashboardService) CapacityStatus(identity *authz.Identity) ([]repository.ClassCapacity, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceClass); err != nil {
		return nil, err
	}

	rows, err := s.repo.CapacityStatus(authz.Scope(identity))
	if err != nil {
		return nil, fmt.Errorf("failed to get capacity status: %w", err)
	}
	return rows, nil
}

// EnrollmentTrends returns enrollment counts bucketed by month
func (s *DashboardService) EnrollmentTrends(identity *authz.Identity, months int) ([]repository.MonthCount, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceEnrollment); err != nil {
		return nil, err
	}

	if months < 1 || months > 24 {
		months = defaultTrendMonths
	}

	rows, err := s.repo.EnrollmentTrends(authz.Scope(identity), months)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment trends: %w", err)
	}
	return rows, nil
}
