package handlers

import (
	"net/http"

	"classroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EnrollmentHandler handles HTTP requests for enrollments
type EnrollmentHandler struct {
	service service.EnrollmentServiceInterface
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(service service.EnrollmentServiceInterface) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// Enroll handles POST /api/enrollments
// @Summary Enroll a student into a class
// @Description The insert is capacity-checked atomically. Full classes and duplicate enrollments are rejected.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollment body service.EnrollRequest true "Enrollment data"
// @Success 201 {object} service.EnrollmentResponse "Successfully enrolled"
// @Failure 400 {object} ErrorResponse "Invalid request or class at capacity"
// @Failure 404 {object} ErrorResponse "Class or student not found"
// @Failure 409 {object} ErrorResponse "Student already enrolled"
// @Security BearerAuth
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	enrollment, err := h.service.Enroll(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, enrollment)
}

// Unenroll handles DELETE /api/enrollments
// @Summary Remove a student from a class
// @Tags enrollments
// @Accept json
// @Produce json
// @Param studentId query string true "Student ID (UUID)"
// @Param classId query string true "Class ID (UUID)"
// @Success 204 "Successfully unenrolled"
// @Failure 400 {object} ErrorResponse "Invalid student or class ID"
// @Failure 404 {object} ErrorResponse "Enrollment not found"
// @Security BearerAuth
// @Router /enrollments [delete]
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	studentID, err := uuid.Parse(c.Query("studentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid student ID"})
		return
	}
	classID, err := uuid.Parse(c.Query("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid class ID"})
		return
	}

	if err := h.service.Unenroll(identity, studentID, classID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetRoster handles GET /api/enrollments/class/:classId
// @Summary List the students enrolled in a class
// @Tags enrollments
// @Accept json
// @Produce json
// @Param classId path string true "Class ID (UUID)"
// @Success 200 {object} map[string]interface{} "Enrolled students"
// @Failure 400 {object} ErrorResponse "Invalid class ID"
// @Failure 404 {object} ErrorResponse "Class not found"
// @Security BearerAuth
// @Router /enrollments/class/{classId} [get]
func (h *EnrollmentHandler) GetRoster(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	classID, err := uuid.Parse(c.Param("classId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid class ID"})
		return
	}

	students, err := h.service.Roster(identity, classID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, students)
}
