package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"classroom-backend/internal/authz"
	"classroom-backend/internal/config"
	"classroom-backend/internal/database/models"
	"classroom-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockSession *mocks.MockSessionRepositoryInterface
	service     *AuthService
	router      *gin.Engine
	user        *models.User
	token       string
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockSession = mocks.NewMockSessionRepositoryInterface(s.ctrl)

	cfg := &config.Config{
		Environment:     "test",
		JWTSecret:       "test-secret-key-for-suites-only",
		SessionTTLHours: 168,
	}
	s.service = NewAuthService(nil, nil, s.mockSession, nil, validator.New(), cfg)

	s.user = &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "pat@evergreen.edu",
		Role:           models.UserRoleTeacher,
		OrganizationID: uuid.New(),
	}

	s.mockSession.EXPECT().Create(gomock.Any()).Return(nil)
	resp, err := s.service.issueSessionForTest(s.user)
	s.Require().NoError(err)
	s.token = resp.Token

	s.router = gin.New()
	s.router.Use(NewAuthMiddleware(s.service).RequireAuth())
	s.router.GET("/whoami", func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "identity missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":         identity.UserID,
			"role":            string(identity.Role),
			"organization_id": identity.OrganizationID,
		})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareTestSuite) session() *models.Session {
	return &models.Session{
		Token:     s.token,
		ExpiresAt: time.Now().Add(time.Hour),
		UserID:    s.user.ID,
		User:      s.user,
	}
}

func (s *AuthMiddlewareTestSuite) TestBearerHeader() {
	s.mockSession.EXPECT().GetByToken(s.token).Return(s.session(), nil)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), s.user.ID.String())
	s.Contains(rec.Body.String(), `"role":"teacher"`)
}

func (s *AuthMiddlewareTestSuite) TestSessionCookie() {
	s.mockSession.EXPECT().GetByToken(s.token).Return(s.session(), nil)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: s.token})
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthMiddlewareTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "authentication required")
}

func (s *AuthMiddlewareTestSuite) TestRevokedSession() {
	s.mockSession.EXPECT().GetByToken(s.token).Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+s.token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "invalid or expired session")
}

func (s *AuthMiddlewareTestSuite) TestForgedToken() {
	// signed with a different secret; must never reach the session store
	otherCfg := &config.Config{JWTSecret: "another-secret", SessionTTLHours: 1}
	other := NewAuthService(nil, nil, s.mockSession, nil, validator.New(), otherCfg)
	s.mockSession.EXPECT().Create(gomock.Any()).Return(nil)
	forged, err := other.issueSessionForTest(s.user)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+forged.Token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("header wins over cookie", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer header-token")
		c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

		if got := ExtractToken(c); got != "header-token" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("non-bearer header falls through to cookie", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		c.Request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

		if got := ExtractToken(c); got != "cookie-token" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("nothing present", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		if got := ExtractToken(c); got != "" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestSetIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	want := &authz.Identity{UserID: uuid.New(), Role: models.UserRoleAdmin, OrganizationID: uuid.New()}
	SetIdentity(c, want)

	got, ok := CurrentIdentity(c)
	if !ok || got != want {
		t.Fatalf("identity not round-tripped")
	}
}
