package handlers

import (
	"net/http"
	"strconv"

	"classroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard views
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats handles GET /api/dashboard/stats
// @Summary Organization entity counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} repository.DashboardStats "Tenant-scoped counts"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, stats)
}

// GetEnrollmentTrends handles GET /api/dashboard/charts/enrollment-trends
// @Summary Enrollment counts bucketed by month
// @Tags dashboard
// @Produce json
// @Param months query int false "Number of months" default(6)
// @Success 200 {array} repository.MonthCount "Monthly enrollment counts"
// @Security BearerAuth
// @Router /dashboard/charts/enrollment-trends [get]
func (h *DashboardHandler) GetEnrollmentTrends(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))

	rows, err := h.service.EnrollmentTrends(identity, months)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, rows)
}

// GetClassesByDepartment handles GET /api/dashboard/charts/classes-by-dept
// @Summary Class counts grouped by department
// @Tags dashboard
// @Produce json
// @Success 200 {array} repository.NameCount "Class counts per department"
// @Security BearerAuth
// @Router /dashboard/charts/classes-by-dept [get]
func (h *DashboardHandler) GetClassesByDepartment(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	rows, err := h.service.ClassesByDepartment(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, rows)
}

// GetUserDistribution handles GET /api/dashboard/charts/user-distribution
// @Summary Non-admin user counts grouped by role
// @Tags dashboard
// @Produce json
// @Success 200 {array} repository.NameCount "User counts per role"
// @Security BearerAuth
// @Router /dashboard/charts/user-distribution [get]
func (h *DashboardHandler) GetUserDistribution(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	rows, err := h.service.UserDistribution(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, rows)
}

// GetCapacityStatus handles GET /api/dashboard/charts/capacity-status
// @Summary Per-class enrollment counts against capacity
// @Tags dashboard
// @Produce json
// @Success 200 {array} repository.ClassCapacity "Capacity usage per class"
// @Security BearerAuth
// @Router /dashboard/charts/capacity-status [get]
func (h *DashboardHandler) GetCapacityStatus(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	rows, err := h.service.CapacityStatus(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, rows)
}
