package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"classroom-backend/internal/auth"
	"classroom-backend/internal/authz"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/logger"
	"classroom-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"not found"`
	Message string `json:"message,omitempty"`
}

// respondData writes a success envelope
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// respondPage writes a success envelope with pagination metadata
func respondPage(c *gin.Context, data interface{}, pagination service.Pagination) {
	c.JSON(http.StatusOK, gin.H{"data": data, "pagination": pagination})
}

// respondError maps the error taxonomy to HTTP statuses. Unrecognized errors
// become opaque 500s; the wrapped cause is logged, not leaked.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation failed",
			"message": validationErr.Error(),
			"details": validationErr.Fields,
		})
		return
	}

	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden", Message: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found", Message: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "conflict", Message: err.Error()})
	case apperrors.IsCapacity(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "capacity exceeded", Message: err.Error()})
	case apperrors.IsDependency(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "dependent rows exist", Message: err.Error()})
	default:
		logger.WithContext(c).WithField("path", c.Request.URL.Path).Errorf("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// requireIdentity returns the resolved caller identity or writes a 401
func requireIdentity(c *gin.Context) (*authz.Identity, bool) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: "authentication required"})
		return nil, false
	}
	return identity, true
}

// parseListQuery reads the common list parameters from the query string
func parseListQuery(c *gin.Context) service.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	return service.ListQuery{
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
		SortField: c.Query("sortField"),
		SortOrder: c.Query("sortOrder"),
	}
}
