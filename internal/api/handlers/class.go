package handlers

import (
	"net/http"

	"classroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClassHandler handles HTTP requests for classes
type ClassHandler struct {
	service service.ClassServiceInterface
}

// NewClassHandler creates a new class handler
func NewClassHandler(service service.ClassServiceInterface) *ClassHandler {
	return &ClassHandler{service: service}
}

// CreateClass handles POST /api/classes
// @Summary Create a new class
// @Description Create a class under a subject with an assigned teacher. The invite code is generated server-side.
// @Tags classes
// @Accept json
// @Produce json
// @Param class body service.CreateClassRequest true "Class data"
// @Success 201 {object} service.ClassResponse "Successfully created class"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Subject or teacher not found"
// @Security BearerAuth
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	class, err := h.service.Create(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, class)
}

// GetClass handles GET /api/classes/:id
// @Summary Get class by ID
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Success 200 {object} service.ClassResponse "Successfully retrieved class"
// @Failure 400 {object} ErrorResponse "Invalid class ID"
// @Failure 404 {object} ErrorResponse "Class not found"
// @Security BearerAuth
// @Router /classes/{id} [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid class ID"})
		return
	}

	class, err := h.service.GetByID(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, class)
}

// ListClasses handles GET /api/classes
// @Summary List classes
// @Description List the organization's classes with search, subject and status filters, and pagination
// @Tags classes
// @Accept json
// @Produce json
// @Param subjectId query string false "Subject ID filter (UUID)"
// @Param status query string false "Status filter (active, inactive or archived)"
// @Param search query string false "Search in name"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sortField query string false "Sort field"
// @Param sortOrder query string false "Sort order (asc or desc)"
// @Success 200 {object} map[string]interface{} "Classes with pagination"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /classes [get]
func (h *ClassHandler) ListClasses(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var subjectID *uuid.UUID
	if raw := c.Query("subjectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid subject ID filter"})
			return
		}
		subjectID = &id
	}

	result, err := h.service.List(identity, subjectID, c.Query("status"), parseListQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondPage(c, result.Classes, result.Pagination)
}

// UpdateClass handles PUT /api/classes/:id
// @Summary Update class
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Param class body service.UpdateClassRequest true "Updated class data"
// @Success 200 {object} service.ClassResponse "Successfully updated class"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Class, subject or teacher not found"
// @Security BearerAuth
// @Router /classes/{id} [put]
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid class ID"})
		return
	}

	var req service.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	class, err := h.service.Update(identity, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, class)
}

// DeleteClass handles DELETE /api/classes/:id
// @Summary Delete class
// @Description Deleting a class also removes its enrollments
// @Tags classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID (UUID)"
// @Success 204 "Successfully deleted class"
// @Failure 400 {object} ErrorResponse "Invalid class ID"
// @Failure 404 {object} ErrorResponse "Class not found"
// @Security BearerAuth
// @Router /classes/{id} [delete]
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid class ID"})
		return
	}

	if err := h.service.Delete(identity, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
