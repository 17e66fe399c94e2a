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

// DepartmentRepositoryTestSuite tests the DepartmentRepository
type DepartmentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DepartmentRepository
	factories     *testutils.FactorySet
	org           *models.Organization
}

func (suite *DepartmentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDepartmentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *DepartmentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *DepartmentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
}

func (suite *DepartmentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new department
func (suite *DepartmentRepositoryTestSuite) TestCreate() {
	dept := suite.factories.Department.WithCode(suite.org.ID, "MATH")

	err := suite.repo.Create(dept)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, dept.ID)
}

// TestCreateDuplicateCodeSameOrg tests the per-tenant unique constraint on code
func (suite *DepartmentRepositoryTestSuite) TestCreateDuplicateCodeSameOrg() {
	suite.NoError(suite.repo.Create(suite.factories.Department.WithCode(suite.org.ID, "MATH")))

	err := suite.repo.Create(suite.factories.Department.WithCode(suite.org.ID, "MATH"))

	suite.Error(err)
	suite.True(apperrors.IsUniqueViolation(err))
}

// TestCreateSameCodeDifferentOrg tests that the code constraint is scoped per tenant
func (suite *DepartmentRepositoryTestSuite) TestCreateSameCodeDifferentOrg() {
	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)

	suite.NoError(suite.repo.Create(suite.factories.Department.WithCode(suite.org.ID, "MATH")))
	suite.NoError(suite.repo.Create(suite.factories.Department.WithCode(otherOrg.ID, "MATH")))
}

// TestGetScoped tests tenant scoping on single-row reads
func (suite *DepartmentRepositoryTestSuite) TestGetScoped() {
	dept := suite.factories.Department.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(dept))

	retrieved, err := suite.repo.GetScoped(suite.org.ID, dept.ID)
	suite.NoError(err)
	suite.Equal(dept.Code, retrieved.Code)

	_, err = suite.repo.GetScoped(uuid.New(), dept.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListSearchAndSort tests search plus whitelisted sorting
func (suite *DepartmentRepositoryTestSuite) TestListSearchAndSort() {
	math := suite.factories.Department.WithCode(suite.org.ID, "MATH")
	math.Name = "Mathematics"
	science := suite.factories.Department.WithCode(suite.org.ID, "SCI")
	science.Name = "Science"
	suite.NoError(suite.repo.Create(math))
	suite.NoError(suite.repo.Create(science))

	depts, total, err := suite.repo.List(suite.org.ID, ListOptions{Search: "math", Limit: 10})
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(depts, 1)
	suite.Equal("MATH", depts[0].Code)

	depts, total, err = suite.repo.List(suite.org.ID,
		ListOptions{SortField: "code", SortOrder: "asc", Limit: 10})
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(depts, 2)
	suite.Equal("MATH", depts[0].Code)
	suite.Equal("SCI", depts[1].Code)
}

// TestListScopedToOrganization tests that other tenants' departments stay invisible
func (suite *DepartmentRepositoryTestSuite) TestListScopedToOrganization() {
	otherOrg := suite.factories.Organization.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherOrg).Error)
	suite.NoError(suite.repo.Create(suite.factories.Department.WithOrganization(suite.org.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Department.WithOrganization(otherOrg.ID)))

	_, total, err := suite.repo.List(suite.org.ID, ListOptions{Limit: 10})

	suite.NoError(err)
	suite.Equal(int64(1), total)
}

// TestUpdate tests updating a department
func (suite *DepartmentRepositoryTestSuite) TestUpdate() {
	dept := suite.factories.Department.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(dept))

	dept.Name = "Applied Mathematics"
	suite.NoError(suite.repo.Update(dept))

	retrieved, err := suite.repo.GetScoped(suite.org.ID, dept.ID)
	suite.NoError(err)
	suite.Equal("Applied Mathematics", retrieved.Name)
}

// TestDelete tests removing an empty department
func (suite *DepartmentRepositoryTestSuite) TestDelete() {
	dept := suite.factories.Department.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(dept))

	suite.NoError(suite.repo.Delete(suite.org.ID, dept.ID))

	_, err := suite.repo.GetScoped(suite.org.ID, dept.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteNotFound tests deleting a missing or cross-tenant department
func (suite *DepartmentRepositoryTestSuite) TestDeleteNotFound() {
	dept := suite.factories.Department.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(dept))

	suite.ErrorIs(suite.repo.Delete(suite.org.ID, uuid.New()), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.Delete(uuid.New(), dept.ID), gorm.ErrRecordNotFound)
}

// TestDeleteWithSubjects tests the restrict constraint on subjects.department_id
func (suite *DepartmentRepositoryTestSuite) TestDeleteWithSubjects() {
	dept := suite.factories.Department.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(dept))
	subject := suite.factories.Subject.WithDepartment(suite.org.ID, dept.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(subject).Error)

	err := suite.repo.Delete(suite.org.ID, dept.ID)

	suite.Error(err)
	suite.True(apperrors.IsForeignKeyViolation(err))
}

func TestDepartmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentRepositoryTestSuite))
}
