package handlers

import (
	"net/http"

	"classroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// GetOrganization handles GET /api/organization/:id
// @Summary Get organization by ID
// @Description Get the caller's own organization. Cross-tenant ids are rejected as forbidden.
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Successfully retrieved organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Organization belongs to another tenant"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organization/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid organization ID"})
		return
	}

	org, err := h.service.GetByID(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, org)
}
