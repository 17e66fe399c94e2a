package repository

import (
	"testing"

	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
}

// TestCreateDuplicateEmail tests the unique constraint on the contact email
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateEmail() {
	org1 := suite.factories.Organization.WithEmail("office@evergreen.edu")
	suite.NoError(suite.repo.Create(org1))

	org2 := suite.factories.Organization.WithEmail("office@evergreen.edu")
	err := suite.repo.Create(org2)

	suite.Error(err)
	suite.True(apperrors.IsUniqueViolation(err))
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal(org.Name, retrieved.Name)
	suite.Equal(org.Email, retrieved.Email)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(org)
}

// TestGetByEmail tests retrieving an organization by contact email
func (suite *OrganizationRepositoryTestSuite) TestGetByEmail() {
	org := suite.factories.Organization.WithEmail("office@evergreen.edu")
	suite.NoError(suite.repo.Create(org))

	retrieved, err := suite.repo.GetByEmail("office@evergreen.edu")

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

// TestUpdate tests updating an organization
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	org.Name = "Evergreen High"
	org.SubscriptionStatus = models.SubscriptionStatusActive
	suite.NoError(suite.repo.Update(org))

	retrieved, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal("Evergreen High", retrieved.Name)
	suite.Equal(models.SubscriptionStatusActive, retrieved.SubscriptionStatus)
}

// TestDeleteCascadesToUsers tests that offboarding an organization removes its users
func (suite *OrganizationRepositoryTestSuite) TestDeleteCascadesToUsers() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))
	user := suite.factories.User.WithOrganization(org.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	suite.NoError(suite.repo.Delete(org.ID))

	_, err := suite.repo.GetByID(org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.baseTestSuite.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	suite.Zero(count)
}

// TestProvisionWithAdmin tests that provisioning inserts all three rows
func (suite *OrganizationRepositoryTestSuite) TestProvisionWithAdmin() {
	org := suite.factories.Organization.Create()
	admin := suite.factories.User.WithRole(uuid.Nil, models.UserRoleAdmin)
	account := &models.Account{
		ProviderID: models.ProviderCredential,
		Password:   "$2a$10$not-a-real-hash",
	}

	err := suite.repo.ProvisionWithAdmin(org, admin, account)

	suite.NoError(err)
	suite.Equal(org.ID, admin.OrganizationID)
	suite.Equal(admin.ID, account.UserID)
	suite.Equal(admin.ID.String(), account.AccountID)

	var stored models.Account
	suite.NoError(suite.baseTestSuite.DB.First(&stored, "user_id = ?", admin.ID).Error)
	suite.Equal(models.ProviderCredential, stored.ProviderID)
}

// TestProvisionWithAdminRollsBack tests that a failed provisioning leaves no partial rows
func (suite *OrganizationRepositoryTestSuite) TestProvisionWithAdminRollsBack() {
	existing := suite.factories.Organization.WithEmail("office@evergreen.edu")
	suite.NoError(suite.repo.Create(existing))

	org := suite.factories.Organization.WithEmail("office@evergreen.edu")
	admin := suite.factories.User.WithRole(uuid.Nil, models.UserRoleAdmin)
	account := &models.Account{ProviderID: models.ProviderCredential, Password: "hash"}

	err := suite.repo.ProvisionWithAdmin(org, admin, account)

	suite.Error(err)
	suite.True(apperrors.IsUniqueViolation(err))

	var users, accounts int64
	suite.baseTestSuite.DB.Model(&models.User{}).Where("email = ?", admin.Email).Count(&users)
	suite.baseTestSuite.DB.Model(&models.Account{}).Count(&accounts)
	suite.Zero(users)
	suite.Zero(accounts)
}

func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
