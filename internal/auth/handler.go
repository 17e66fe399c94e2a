package auth

import (
	"errors"
	"net/http"
	"time"

	apperrors "classroom-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler exposes the credential sign-up/sign-in/sign-out endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignUp handles POST /api/auth/sign-up/email
// @Summary Sign up with email and password
// @Description Create a user account. When organizationData is present the organization is provisioned first and the new user becomes its admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Sign-up data"
// @Success 201 {object} SessionResponse "Account created, session issued"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Router /api/auth/sign-up/email [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	session, err := h.service.SignUp(&req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, session)
	c.JSON(http.StatusCreated, gin.H{"data": session})
}

// SignIn handles POST /api/auth/sign-in/email
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} SessionResponse "Session issued"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/sign-in/email [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	session, err := h.service.SignIn(&req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, session)
	c.JSON(http.StatusOK, gin.H{"data": session})
}

// SignOut handles POST /api/auth/sign-out
// @Summary Revoke the current session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Session revoked"
// @Failure 401 {object} map[string]interface{} "No session"
// @Security BearerAuth
// @Router /api/auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "authentication required"})
		return
	}

	if err := h.service.SignOut(token); err != nil {
		h.respondError(c, err)
		return
	}

	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"success": true}})
}

// GetSession handles GET /api/auth/get-session
// @Summary Return the session behind the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse "Current session"
// @Failure 401 {object} map[string]interface{} "No valid session"
// @Security BearerAuth
// @Router /api/auth/get-session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	token := ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "authentication required"})
		return
	}

	session, err := h.service.ResolveSession(token)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      session.User,
	}})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *SessionResponse) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(SessionCookieName, session.Token, maxAge, "/", "", false, true)
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
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
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict", "message": err.Error()})
	default:
		logrus.WithError(err).Error("auth request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
