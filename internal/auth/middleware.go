package auth

import (
	"net/http"
	"strings"

	"classroom-backend/internal/authz"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token when the
// Authorization header is absent
const SessionCookieName = "classroom.session_token"

const identityContextKey = "identity"

// AuthMiddleware resolves session tokens and sets the caller's identity
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the session token and sets the identity context.
// Requests without a valid, unexpired, unrevoked session are rejected.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		session, err := m.service.ResolveSession(token)
		if err != nil || session.User == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set(identityContextKey, &authz.Identity{
			UserID:         session.User.ID,
			Role:           session.User.Role,
			OrganizationID: session.User.OrganizationID,
		})
		c.Set("user_id", session.User.ID.String())
		c.Set("email", session.User.Email)

		c.Next()
	}
}

// CurrentIdentity returns the resolved identity for the request. Handlers
// pass it explicitly into services; nothing downstream reads the Gin context.
func CurrentIdentity(c *gin.Context) (*authz.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*authz.Identity)
	return identity, ok
}

// ExtractToken returns the session token from the Authorization header or the
// session cookie, preferring the header.
func ExtractToken(c *gin.Context) string {
	return extractToken(c)
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return token
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetIdentity injects an identity into the request context. Used by the
// middleware and by handler tests that bypass session resolution.
func SetIdentity(c *gin.Context, identity *authz.Identity) {
	c.Set(identityContextKey, identity)
}
