package repository

import (
	"testing"

	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// EnrollmentRepositoryTestSuite tests the EnrollmentRepository
type EnrollmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *EnrollmentRepository
	factories     *testutils.FactorySet
	org           *models.Organization
	teacher       *models.User
	class         *models.Class
}

func (suite *EnrollmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewEnrollmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *EnrollmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *EnrollmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	org, teacher, _, dept, subject, class := suite.factories.CreateFullTenant()
	suite.Require().NoError(db.Create(org).Error)
	suite.Require().NoError(db.Create(teacher).Error)
	suite.Require().NoError(db.Create(dept).Error)
	suite.Require().NoError(db.Create(subject).Error)
	suite.Require().NoError(db.Create(class).Error)
	suite.org = org
	suite.teacher = teacher
	suite.class = class
}

func (suite *EnrollmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *EnrollmentRepositoryTestSuite) newStudent() *models.User {
	student := suite.factories.User.WithRole(suite.org.ID, models.UserRoleStudent)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(student).Error)
	return student
}

// TestEnroll tests enrolling a student into a class
func (suite *EnrollmentRepositoryTestSuite) TestEnroll() {
	student := suite.newStudent()

	enrollment, err := suite.repo.Enroll(student.ID, suite.class.ID)

	suite.NoError(err)
	suite.Equal(student.ID, enrollment.StudentID)
	suite.Equal(suite.class.ID, enrollment.ClassID)
	suite.NotZero(enrollment.CreatedAt)
}

// TestEnrollDuplicate tests the composite primary key on (student, class)
func (suite *EnrollmentRepositoryTestSuite) TestEnrollDuplicate() {
	student := suite.newStudent()
	_, err := suite.repo.Enroll(student.ID, suite.class.ID)
	suite.NoError(err)

	_, err = suite.repo.Enroll(student.ID, suite.class.ID)

	suite.Error(err)
	suite.True(apperrors.IsUniqueViolation(err))
}

// TestEnrollCapacityFull tests that a full class rejects further enrollments
func (suite *EnrollmentRepositoryTestSuite) TestEnrollCapacityFull() {
	suite.class.Capacity = 2
	suite.Require().NoError(suite.baseTestSuite.DB.Save(suite.class).Error)

	_, err := suite.repo.Enroll(suite.newStudent().ID, suite.class.ID)
	suite.NoError(err)
	_, err = suite.repo.Enroll(suite.newStudent().ID, suite.class.ID)
	suite.NoError(err)

	_, err = suite.repo.Enroll(suite.newStudent().ID, suite.class.ID)

	suite.Error(err)
	suite.True(apperrors.IsCapacity(err))

	// the failed attempt must not have left a row behind
	count, countErr := suite.repo.CountByClass(suite.class.ID)
	suite.NoError(countErr)
	suite.Equal(int64(2), count)
}

// TestEnrollClassMissing tests enrolling into a class that does not exist
func (suite *EnrollmentRepositoryTestSuite) TestEnrollClassMissing() {
	student := suite.newStudent()
	suite.Require().NoError(suite.baseTestSuite.DB.Delete(suite.class).Error)

	_, err := suite.repo.Enroll(student.ID, suite.class.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUnenroll tests removing an enrollment
func (suite *EnrollmentRepositoryTestSuite) TestUnenroll() {
	student := suite.newStudent()
	_, err := suite.repo.Enroll(student.ID, suite.class.ID)
	suite.NoError(err)

	suite.NoError(suite.repo.Unenroll(student.ID, suite.class.ID))

	count, err := suite.repo.CountByClass(suite.class.ID)
	suite.NoError(err)
	suite.Zero(count)
}

// TestUnenrollNotEnrolled tests removing a non-existent enrollment
func (suite *EnrollmentRepositoryTestSuite) TestUnenrollNotEnrolled() {
	student := suite.newStudent()

	err := suite.repo.Unenroll(student.ID, suite.class.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListStudentsByClass tests the roster query and its name ordering
func (suite *EnrollmentRepositoryTestSuite) TestListStudentsByClass() {
	zoe := suite.newStudent()
	zoe.Name = "Zoe"
	suite.Require().NoError(suite.baseTestSuite.DB.Save(zoe).Error)
	ada := suite.newStudent()
	ada.Name = "Ada"
	suite.Require().NoError(suite.baseTestSuite.DB.Save(ada).Error)

	_, err := suite.repo.Enroll(zoe.ID, suite.class.ID)
	suite.NoError(err)
	_, err = suite.repo.Enroll(ada.ID, suite.class.ID)
	suite.NoError(err)

	students, err := suite.repo.ListStudentsByClass(suite.class.ID)

	suite.NoError(err)
	suite.Require().Len(students, 2)
	suite.Equal("Ada", students[0].Name)
	suite.Equal("Zoe", students[1].Name)
}

// TestCountByClass tests the enrollment count
func (suite *EnrollmentRepositoryTestSuite) TestCountByClass() {
	count, err := suite.repo.CountByClass(suite.class.ID)
	suite.NoError(err)
	suite.Zero(count)

	_, err = suite.repo.Enroll(suite.newStudent().ID, suite.class.ID)
	suite.NoError(err)

	count, err = suite.repo.CountByClass(suite.class.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func TestEnrollmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentRepositoryTestSuite))
}
