package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"classroom-backend/internal/config"
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues and resolves sessions, verifies credentials and runs the
// organization provisioning workflow on sign-up.
type AuthService struct {
	orgRepo     repository.OrganizationRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	sessionRepo repository.SessionRepositoryInterface
	accountRepo repository.AccountRepositoryInterface
	validator   *validator.Validate
	cfg         *config.Config
}

// NewAuthService creates a new authentication service
func NewAuthService(
	orgRepo repository.OrganizationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	sessionRepo repository.SessionRepositoryInterface,
	accountRepo repository.AccountRepositoryInterface,
	validator *validator.Validate,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		orgRepo:     orgRepo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		accountRepo: accountRepo,
		validator:   validator,
		cfg:         cfg,
	}
}

// OrganizationData is the strict organization schema inside a sign-up payload.
// Its presence turns the sign-up into a provisioning request.
type OrganizationData struct {
	Name    string `json:"organizationName" validate:"required,min=1,max=255"`
	Type    string `json:"organizationType" validate:"required,oneof=school college university coaching"`
	Email   string `json:"organizationEmail" validate:"required,email"`
	Phone   string `json:"organizationPhone,omitempty"`
	Address string `json:"organizationAddress,omitempty"`
	Logo    string `json:"organizationLogo,omitempty" validate:"omitempty,url"`
}

// SignUpRequest represents the sign-up payload. OrganizationData triggers the
// provisioning workflow; otherwise OrganizationID must reference an existing
// organization and Role may be teacher or student, never admin.
type SignUpRequest struct {
	Name             string            `json:"name" validate:"required,min=1,max=255"`
	Email            string            `json:"email" validate:"required,email"`
	Password         string            `json:"password" validate:"required,min=8,max=128"`
	Role             string            `json:"role,omitempty"`
	OrganizationID   string            `json:"organizationId,omitempty"`
	OrganizationData *OrganizationData `json:"organizationData,omitempty"`
}

// SignInRequest represents the credential sign-in payload
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned by sign-up, sign-in and get-session
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// SessionClaims are the JWT claims embedded in a session token
type SessionClaims struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
	jwt.RegisteredClaims
}

// SignUp creates a user account. When the payload carries organizationData it
// first provisions the organization and makes the new user its admin; the
// organization, user and credential rows are committed in one transaction.
func (s *AuthService) SignUp(req *SignUpRequest, ipAddress, userAgent string) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user *models.User
	if req.OrganizationData != nil {
		user, err = s.provisionOrganization(req, string(hash))
	} else {
		user, err = s.plainSignUp(req, string(hash))
	}
	if err != nil {
		return nil, err
	}

	return s.issueSession(user, ipAddress, userAgent)
}

// provisionOrganization runs the provisioning workflow: validate the strict
// organization schema, then insert organization + admin user + credential
// account as a single unit. Client-supplied role and organizationId are
// discarded; the new user is always the organization's admin.
func (s *AuthService) provisionOrganization(req *SignUpRequest, passwordHash string) (*models.User, error) {
	orgData := req.OrganizationData
	if err := s.validator.Struct(orgData); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, s.cfg.TrialPeriodDays)
	org := &models.Organization{
		Name:                  orgData.Name,
		Type:                  models.OrganizationType(orgData.Type),
		Email:                 strings.ToLower(strings.TrimSpace(orgData.Email)),
		Phone:                 orgData.Phone,
		Address:               orgData.Address,
		Logo:                  orgData.Logo,
		SubscriptionStatus:    models.SubscriptionStatusTrial,
		SubscriptionStartDate: &now,
		SubscriptionEndDate:   &trialEnd,
	}

	admin := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  models.UserRoleAdmin,
	}
	account := &models.Account{
		ProviderID: models.ProviderCredential,
		Password:   passwordHash,
	}

	if err := s.orgRepo.ProvisionWithAdmin(org, admin, account); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, s.conflictFor(org.Email, req.Email)
		}
		return nil, fmt.Errorf("failed to provision organization: %w", err)
	}

	return admin, nil
}

// plainSignUp creates a teacher or student inside an existing organization
func (s *AuthService) plainSignUp(req *SignUpRequest, passwordHash string) (*models.User, error) {
	role := models.UserRoleStudent
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}
	if role == models.UserRoleAdmin {
		return nil, apperrors.ErrAdminRoleReserved
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be teacher or student")
	}

	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, apperrors.NewValidationError("organizationId", "is required for non-organization sign-up")
	}
	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to look up organization: %w", err)
	}

	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		Role:           role,
		OrganizationID: orgID,
	}
	account := &models.Account{
		ProviderID: models.ProviderCredential,
		Password:   passwordHash,
	}

	if err := s.userRepo.CreateWithAccount(user, account); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// SignIn verifies credentials and issues a new session
func (s *AuthService) SignIn(req *SignInRequest, ipAddress, userAgent string) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	account, err := s.accountRepo.GetCredential(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(user, ipAddress, userAgent)
}

// SignOut revokes the session behind the given token
func (s *AuthService) SignOut(token string) error {
	if err := s.sessionRepo.DeleteByToken(token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ResolveSession validates a token's signature and looks the session up in
// the database so revoked sessions are rejected even before expiry.
func (s *AuthService) ResolveSession(token string) (*models.Session, error) {
	if _, err := s.parseToken(token); err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session.IsExpired() {
		_ = s.sessionRepo.DeleteByToken(token)
		return nil, apperrors.ErrSessionExpired
	}

	return session, nil
}

// issueSession signs a JWT for the user and persists it as a session row
func (s *AuthService) issueSession(user *models.User, ipAddress, userAgent string) (*SessionResponse, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.cfg.SessionTTLHours) * time.Hour)

	claims := &SessionClaims{
		UserID:         user.ID.String(),
		Email:          user.Email,
		Role:           string(user.Role),
		OrganizationID: user.OrganizationID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "classroom-backend",
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	session := &models.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		UserID:    user.ID,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &SessionResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// parseToken validates signature and standard claims of a session token
func (s *AuthService) parseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// conflictFor picks the conflicting entity when provisioning hits a unique violation
func (s *AuthService) conflictFor(orgEmail, userEmail string) error {
	if existing, err := s.orgRepo.GetByEmail(orgEmail); err == nil && existing != nil {
		return apperrors.ErrOrganizationExists
	}
	if existing, err := s.userRepo.GetByEmail(userEmail); err == nil && existing != nil {
		return apperrors.ErrUserExists
	}
	return apperrors.ErrOrganizationExists
}
