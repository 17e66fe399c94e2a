package repository

import (
	"testing"

	"classroom-backend/internal/database/models"
	"classroom-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AccountRepositoryTestSuite tests the AccountRepository
type AccountRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AccountRepository
	factories     *testutils.FactorySet
	user          *models.User
}

func (suite *AccountRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAccountRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *AccountRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AccountRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	org := suite.factories.Organization.Create()
	suite.Require().NoError(db.Create(org).Error)
	suite.user = suite.factories.User.WithOrganization(org.ID)
	suite.Require().NoError(db.Create(suite.user).Error)
}

func (suite *AccountRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetCredential tests the credential account round trip
func (suite *AccountRepositoryTestSuite) TestCreateAndGetCredential() {
	account := &models.Account{
		AccountID:  suite.user.ID.String(),
		ProviderID: models.ProviderCredential,
		UserID:     suite.user.ID,
		Password:   "$2a$10$not-a-real-hash",
	}
	suite.NoError(suite.repo.Create(account))

	retrieved, err := suite.repo.GetCredential(suite.user.ID)

	suite.NoError(err)
	suite.Equal(account.Password, retrieved.Password)
	suite.Equal(models.ProviderCredential, retrieved.ProviderID)
}

// TestGetCredentialIgnoresOtherProviders tests that only credential rows resolve
func (suite *AccountRepositoryTestSuite) TestGetCredentialIgnoresOtherProviders() {
	account := &models.Account{
		AccountID:  "google-123",
		ProviderID: "google",
		UserID:     suite.user.ID,
	}
	suite.NoError(suite.repo.Create(account))

	_, err := suite.repo.GetCredential(suite.user.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetCredentialNotFound tests a user with no accounts at all
func (suite *AccountRepositoryTestSuite) TestGetCredentialNotFound() {
	_, err := suite.repo.GetCredential(suite.user.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}
