package handlers

import (
	"net/http"

	"classroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubjectHandler handles HTTP requests for subjects
type SubjectHandler struct {
	service service.SubjectServiceInterface
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(service service.SubjectServiceInterface) *SubjectHandler {
	return &SubjectHandler{service: service}
}

// CreateSubject handles POST /api/subjects
// @Summary Create a new subject
// @Description Create a subject under a department of the caller's organization
// @Tags subjects
// @Accept json
// @Produce json
// @Param subject body service.CreateSubjectRequest true "Subject data"
// @Success 201 {object} service.SubjectResponse "Successfully created subject"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Failure 409 {object} ErrorResponse "Subject code already used in the organization"
// @Security BearerAuth
// @Router /subjects [post]
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req service.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	subject, err := h.service.Create(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, subject)
}

// GetSubject handles GET /api/subjects/:id
// @Summary Get subject by ID
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID (UUID)"
// @Success 200 {object} service.SubjectResponse "Successfully retrieved subject"
// @Failure 400 {object} ErrorResponse "Invalid subject ID"
// @Failure 404 {object} ErrorResponse "Subject not found"
// @Security BearerAuth
// @Router /subjects/{id} [get]
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subject ID"})
		return
	}

	subject, err := h.service.GetByID(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, subject)
}

// ListSubjects handles GET /api/subjects
// @Summary List subjects
// @Description List the organization's subjects with search, department filter and pagination
// @Tags subjects
// @Accept json
// @Produce json
// @Param department query string false "Department name filter"
// @Param search query string false "Search in code and name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sortField query string false "Sort field"
// @Param sortOrder query string false "Sort order (asc or desc)"
// @Success 200 {object} map[string]interface{} "Subjects with pagination"
// @Security BearerAuth
// @Router /subjects [get]
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.List(identity, c.Query("department"), parseListQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondPage(c, result.Subjects, result.Pagination)
}

// UpdateSubject handles PUT /api/subjects/:id
// @Summary Update subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID (UUID)"
// @Param subject body service.UpdateSubjectRequest true "Updated subject data"
// @Success 200 {object} service.SubjectResponse "Successfully updated subject"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Subject or department not found"
// @Failure 409 {object} ErrorResponse "Subject code already used in the organization"
// @Security BearerAuth
// @Router /subjects/{id} [put]
func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subject ID"})
		return
	}

	var req service.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	subject, err := h.service.Update(identity, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, subject)
}

// DeleteSubject handles DELETE /api/subjects/:id
// @Summary Delete subject
// @Description Rejected while classes still reference the subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID (UUID)"
// @Success 204 "Successfully deleted subject"
// @Failure 400 {object} ErrorResponse "Invalid subject ID or dependent classes exist"
// @Failure 404 {object} ErrorResponse "Subject not found"
// @Security BearerAuth
// @Router /subjects/{id} [delete]
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subject ID"})
		return
	}

	if err := h.service.Delete(identity, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
