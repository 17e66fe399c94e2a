package auth

import (
	"testing"
	"time"

	"classroom-backend/internal/config"
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockOrg     *mocks.MockOrganizationRepositoryInterface
	mockUser    *mocks.MockUserRepositoryInterface
	mockSession *mocks.MockSessionRepositoryInterface
	mockAccount *mocks.MockAccountRepositoryInterface
	service     *AuthService
	cfg         *config.Config
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockOrg = mocks.NewMockOrganizationRepositoryInterface(s.ctrl)
	s.mockUser = mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.mockSession = mocks.NewMockSessionRepositoryInterface(s.ctrl)
	s.mockAccount = mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.cfg = &config.Config{
		Environment:     "test",
		JWTSecret:       "test-secret-key-for-suites-only",
		SessionTTLHours: 168,
		TrialPeriodDays: 30,
	}
	s.service = NewAuthService(s.mockOrg, s.mockUser, s.mockSession, s.mockAccount, validator.New(), s.cfg)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func provisioningRequest() *SignUpRequest {
	return &SignUpRequest{
		Name:     "Pat Principal",
		Email:    "Pat@Evergreen.edu",
		Password: "correct-horse-battery",
		OrganizationData: &OrganizationData{
			Name:  "Evergreen High",
			Type:  "school",
			Email: "office@evergreen.edu",
		},
	}
}

func (s *AuthServiceTestSuite) TestSignUp_ProvisionsOrganizationWithAdmin() {
	s.mockOrg.EXPECT().
		ProvisionWithAdmin(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(org *models.Organization, admin *models.User, account *models.Account) error {
			s.Equal("Evergreen High", org.Name)
			s.Equal(models.OrganizationTypeSchool, org.Type)
			s.Equal(models.SubscriptionStatusTrial, org.SubscriptionStatus)
			s.NotNil(org.SubscriptionStartDate)
			s.NotNil(org.SubscriptionEndDate)
			s.WithinDuration(org.SubscriptionStartDate.AddDate(0, 0, 30), *org.SubscriptionEndDate, time.Second)

			// the new user is always the admin, whatever the payload said
			s.Equal(models.UserRoleAdmin, admin.Role)
			s.Equal("pat@evergreen.edu", admin.Email)

			s.Equal(models.ProviderCredential, account.ProviderID)
			s.NoError(bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("correct-horse-battery")))

			admin.ID = uuid.New()
			admin.OrganizationID = uuid.New()
			return nil
		})
	s.mockSession.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := s.service.SignUp(provisioningRequest(), "203.0.113.9", "test-agent")

	s.NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(models.UserRoleAdmin, resp.User.Role)
	s.WithinDuration(time.Now().Add(168*time.Hour), resp.ExpiresAt, time.Minute)
}

func (s *AuthServiceTestSuite) TestSignUp_ProvisioningIgnoresClientRole() {
	req := provisioningRequest()
	req.Role = "student"

	s.mockOrg.EXPECT().
		ProvisionWithAdmin(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(org *models.Organization, admin *models.User, account *models.Account) error {
			s.Equal(models.UserRoleAdmin, admin.Role)
			admin.ID = uuid.New()
			admin.OrganizationID = uuid.New()
			return nil
		})
	s.mockSession.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := s.service.SignUp(req, "", "")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestSignUp_OrganizationValidation() {
	tests := []struct {
		name   string
		mutate func(*SignUpRequest)
	}{
		{"missing organization name", func(r *SignUpRequest) { r.OrganizationData.Name = "" }},
		{"invalid organization type", func(r *SignUpRequest) { r.OrganizationData.Type = "academy" }},
		{"invalid organization email", func(r *SignUpRequest) { r.OrganizationData.Email = "not-an-email" }},
		{"bad logo url", func(r *SignUpRequest) { r.OrganizationData.Logo = "::" }},
		{"short password", func(r *SignUpRequest) { r.Password = "short" }},
		{"missing name", func(r *SignUpRequest) { r.Name = "" }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			req := provisioningRequest()
			tt.mutate(req)

			resp, err := s.service.SignUp(req, "", "")

			s.Nil(resp)
			s.True(apperrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func (s *AuthServiceTestSuite) TestSignUp_DuplicateOrganizationEmail() {
	s.mockOrg.EXPECT().
		ProvisionWithAdmin(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "uni_organizations_email"})
	s.mockOrg.EXPECT().
		GetByEmail("office@evergreen.edu").
		Return(&models.Organization{}, nil)

	resp, err := s.service.SignUp(provisioningRequest(), "", "")

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrOrganizationExists)
}

func (s *AuthServiceTestSuite) TestSignUp_PlainAdminRoleReserved() {
	req := &SignUpRequest{
		Name:           "Sneaky",
		Email:          "sneaky@evergreen.edu",
		Password:       "correct-horse-battery",
		Role:           "admin",
		OrganizationID: uuid.NewString(),
	}

	resp, err := s.service.SignUp(req, "", "")

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrAdminRoleReserved)
}

func (s *AuthServiceTestSuite) TestSignUp_PlainIntoExistingOrganization() {
	orgID := uuid.New()
	s.mockOrg.EXPECT().GetByID(orgID).Return(&models.Organization{
		BaseModel: models.BaseModel{ID: orgID},
	}, nil)
	s.mockUser.EXPECT().
		CreateWithAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(user *models.User, account *models.Account) error {
			s.Equal(models.UserRoleTeacher, user.Role)
			s.Equal(orgID, user.OrganizationID)
			user.ID = uuid.New()
			return nil
		})
	s.mockSession.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := s.service.SignUp(&SignUpRequest{
		Name:           "Terry Teacher",
		Email:          "terry@evergreen.edu",
		Password:       "correct-horse-battery",
		Role:           "teacher",
		OrganizationID: orgID.String(),
	}, "", "")

	s.NoError(err)
	s.Equal(models.UserRoleTeacher, resp.User.Role)
}

func (s *AuthServiceTestSuite) TestSignUp_PlainUnknownOrganization() {
	orgID := uuid.New()
	s.mockOrg.EXPECT().GetByID(orgID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := s.service.SignUp(&SignUpRequest{
		Name:           "Terry Teacher",
		Email:          "terry@evergreen.edu",
		Password:       "correct-horse-battery",
		OrganizationID: orgID.String(),
	}, "", "")

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrOrganizationNotFound)
}

func (s *AuthServiceTestSuite) TestSignIn_Success() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.DefaultCost)
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "pat@evergreen.edu",
		Role:           models.UserRoleAdmin,
		OrganizationID: uuid.New(),
	}
	s.mockUser.EXPECT().GetByEmail("pat@evergreen.edu").Return(user, nil)
	s.mockAccount.EXPECT().GetCredential(user.ID).Return(&models.Account{Password: string(hash)}, nil)
	s.mockSession.EXPECT().Create(gomock.Any()).DoAndReturn(func(session *models.Session) error {
		s.Equal(user.ID, session.UserID)
		s.NotEmpty(session.Token)
		return nil
	})

	resp, err := s.service.SignIn(&SignInRequest{
		Email:    " Pat@Evergreen.edu ",
		Password: "correct-horse-battery",
	}, "203.0.113.9", "test-agent")

	s.NoError(err)
	s.NotEmpty(resp.Token)
}

func (s *AuthServiceTestSuite) TestSignIn_WrongPassword() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse-battery"), bcrypt.DefaultCost)
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}
	s.mockUser.EXPECT().GetByEmail("pat@evergreen.edu").Return(user, nil)
	s.mockAccount.EXPECT().GetCredential(user.ID).Return(&models.Account{Password: string(hash)}, nil)

	resp, err := s.service.SignIn(&SignInRequest{Email: "pat@evergreen.edu", Password: "wrong"}, "", "")

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestSignIn_UnknownEmail() {
	s.mockUser.EXPECT().GetByEmail("ghost@evergreen.edu").Return(nil, gorm.ErrRecordNotFound)

	resp, err := s.service.SignIn(&SignInRequest{Email: "ghost@evergreen.edu", Password: "whatever"}, "", "")

	s.Nil(resp)
	// unknown email and wrong password are indistinguishable
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestResolveSession_Lifecycle() {
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "pat@evergreen.edu",
		Role:           models.UserRoleAdmin,
		OrganizationID: uuid.New(),
	}
	s.mockSession.EXPECT().Create(gomock.Any()).Return(nil)
	resp, err := s.service.issueSessionForTest(user)
	s.Require().NoError(err)

	s.Run("valid token resolves", func() {
		s.mockSession.EXPECT().GetByToken(resp.Token).Return(&models.Session{
			Token:     resp.Token,
			ExpiresAt: resp.ExpiresAt,
			UserID:    user.ID,
			User:      user,
		}, nil)

		session, err := s.service.ResolveSession(resp.Token)
		s.NoError(err)
		s.Equal(user.ID, session.UserID)
	})

	s.Run("revoked token is rejected", func() {
		s.mockSession.EXPECT().GetByToken(resp.Token).Return(nil, gorm.ErrRecordNotFound)

		_, err := s.service.ResolveSession(resp.Token)
		s.ErrorIs(err, apperrors.ErrUnauthenticated)
	})

	s.Run("expired session is purged and rejected", func() {
		s.mockSession.EXPECT().GetByToken(resp.Token).Return(&models.Session{
			Token:     resp.Token,
			ExpiresAt: time.Now().Add(-time.Hour),
			UserID:    user.ID,
			User:      user,
		}, nil)
		s.mockSession.EXPECT().DeleteByToken(resp.Token).Return(nil)

		_, err := s.service.ResolveSession(resp.Token)
		s.ErrorIs(err, apperrors.ErrSessionExpired)
	})

	s.Run("garbage token never reaches the store", func() {
		_, err := s.service.ResolveSession("not-a-jwt")
		s.ErrorIs(err, apperrors.ErrUnauthenticated)
	})
}

func (s *AuthServiceTestSuite) TestSignOut() {
	s.mockSession.EXPECT().DeleteByToken("some-token").Return(nil)
	s.NoError(s.service.SignOut("some-token"))
}

// issueSessionForTest signs a real token without going through sign-in
func (s *AuthService) issueSessionForTest(user *models.User) (*SessionResponse, error) {
	return s.issueSession(user, "", "")
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
