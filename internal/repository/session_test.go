package repository

import (
	"testing"
	"time"

	"classroom-backend/internal/database/models"
	"classroom-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SessionRepositoryTestSuite tests the SessionRepository
type SessionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SessionRepository
	factories     *testutils.FactorySet
	user          *models.User
}

func (suite *SessionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSessionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *SessionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SessionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	org := suite.factories.Organization.Create()
	suite.Require().NoError(db.Create(org).Error)
	suite.user = suite.factories.User.WithRole(org.ID, models.UserRoleTeacher)
	suite.Require().NoError(db.Create(suite.user).Error)
}

func (suite *SessionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SessionRepositoryTestSuite) newSession(expiresAt time.Time) *models.Session {
	return &models.Session{
		Token:     "token-" + uuid.NewString(),
		ExpiresAt: expiresAt,
		UserID:    suite.user.ID,
	}
}

// TestCreateAndGetByToken tests the session round trip with the user preloaded
func (suite *SessionRepositoryTestSuite) TestCreateAndGetByToken() {
	session := suite.newSession(time.Now().Add(time.Hour))
	suite.NoError(suite.repo.Create(session))

	retrieved, err := suite.repo.GetByToken(session.Token)

	suite.NoError(err)
	suite.Equal(session.Token, retrieved.Token)
	suite.Require().NotNil(retrieved.User)
	suite.Equal(suite.user.ID, retrieved.User.ID)
	suite.Equal(suite.user.OrganizationID, retrieved.User.OrganizationID)
}

// TestGetByTokenNotFound tests looking up an unknown token
func (suite *SessionRepositoryTestSuite) TestGetByTokenNotFound() {
	_, err := suite.repo.GetByToken("no-such-token")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteByToken tests revoking a session
func (suite *SessionRepositoryTestSuite) TestDeleteByToken() {
	session := suite.newSession(time.Now().Add(time.Hour))
	suite.NoError(suite.repo.Create(session))

	suite.NoError(suite.repo.DeleteByToken(session.Token))

	_, err := suite.repo.GetByToken(session.Token)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteExpired tests sweeping expired sessions only
func (suite *SessionRepositoryTestSuite) TestDeleteExpired() {
	expired := suite.newSession(time.Now().Add(-time.Hour))
	live := suite.newSession(time.Now().Add(time.Hour))
	suite.NoError(suite.repo.Create(expired))
	suite.NoError(suite.repo.Create(live))

	deleted, err := suite.repo.DeleteExpired(time.Now())

	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repo.GetByToken(expired.Token)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.repo.GetByToken(live.Token)
	suite.NoError(err)
}

func TestSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}
