package service

import (
	"testing"
	"time"

	"classroom-backend/internal/authz"
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type EnrollmentServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockEnrollmentRepositoryInterface
	mockClass *mocks.MockClassRepositoryInterface
	mockUser  *mocks.MockUserRepositoryInterface
	service   *EnrollmentService
	identity  *authz.Identity
	class     *models.Class
	student   *models.User
}

func (s *EnrollmentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockEnrollmentRepositoryInterface(s.ctrl)
	s.mockClass = mocks.NewMockClassRepositoryInterface(s.ctrl)
	s.mockUser = mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.service = NewEnrollmentService(s.mockRepo, s.mockClass, s.mockUser, validator.New())

	orgID := uuid.New()
	s.identity = &authz.Identity{UserID: uuid.New(), Role: models.UserRoleTeacher, OrganizationID: orgID}
	s.class = &models.Class{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Name:           "Algebra I",
		Capacity:       2,
		Status:         models.ClassStatusActive,
	}
	s.student = &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleStudent,
		OrganizationID: orgID,
	}
}

func (s *EnrollmentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EnrollmentServiceTestSuite) TestEnroll_Success() {
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(s.class, nil)
	s.mockUser.EXPECT().GetScoped(s.identity.OrganizationID, s.student.ID).Return(s.student, nil)
	s.mockRepo.EXPECT().Enroll(s.student.ID, s.class.ID).Return(&models.Enrollment{
		StudentID: s.student.ID,
		ClassID:   s.class.ID,
		CreatedAt: time.Now(),
	}, nil)

	resp, err := s.service.Enroll(s.identity, &EnrollRequest{StudentID: s.student.ID, ClassID: s.class.ID})

	s.NoError(err)
	s.Equal(s.student.ID, resp.StudentID)
	s.Equal(s.class.ID, resp.ClassID)
}

func (s *EnrollmentServiceTestSuite) TestEnroll_ClassAtCapacity() {
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(s.class, nil)
	s.mockUser.EXPECT().GetScoped(s.identity.OrganizationID, s.student.ID).Return(s.student, nil)
	s.mockRepo.EXPECT().Enroll(s.student.ID, s.class.ID).Return(nil, apperrors.NewCapacityError("class", 2))

	resp, err := s.service.Enroll(s.identity, &EnrollRequest{StudentID: s.student.ID, ClassID: s.class.ID})

	s.Nil(resp)
	s.True(apperrors.IsCapacity(err))
}

func (s *EnrollmentServiceTestSuite) TestEnroll_DuplicateConflicts() {
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(s.class, nil)
	s.mockUser.EXPECT().GetScoped(s.identity.OrganizationID, s.student.ID).Return(s.student, nil)
	s.mockRepo.EXPECT().Enroll(s.student.ID, s.class.ID).Return(nil, uniqueViolation("enrollments_pkey"))

	resp, err := s.service.Enroll(s.identity, &EnrollRequest{StudentID: s.student.ID, ClassID: s.class.ID})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrEnrollmentExists)
}

func (s *EnrollmentServiceTestSuite) TestEnroll_CrossTenantClassHidden() {
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := s.service.Enroll(s.identity, &EnrollRequest{StudentID: s.student.ID, ClassID: s.class.ID})

	s.Nil(resp)
	s.ErrorIs(err, apperrors.ErrClassNotFound)
}

func (s *EnrollmentServiceTestSuite) TestEnroll_TeacherIsNotAStudent() {
	teacherRow := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Role:           models.UserRoleTeacher,
		OrganizationID: s.identity.OrganizationID,
	}
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(s.class, nil)
	s.mockUser.EXPECT().GetScoped(s.identity.OrganizationID, teacherRow.ID).Return(teacherRow, nil)

	resp, err := s.service.Enroll(s.identity, &EnrollRequest{StudentID: teacherRow.ID, ClassID: s.class.ID})

	s.Nil(resp)
	s.True(apperrors.IsValidation(err))
}

func (s *EnrollmentServiceTestSuite) TestEnroll_MissingFields() {
	resp, err := s.service.Enroll(s.identity, &EnrollRequest{})

	s.Nil(resp)
	s.True(apperrors.IsValidation(err))
}

func (s *EnrollmentServiceTestSuite) TestUnenroll_Success() {
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(s.class, nil)
	s.mockRepo.EXPECT().Unenroll(s.student.ID, s.class.ID).Return(nil)

	s.NoError(s.service.Unenroll(s.identity, s.student.ID, s.class.ID))
}

func (s *EnrollmentServiceTestSuite) TestUnenroll_NotEnrolled() {
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(s.class, nil)
	s.mockRepo.EXPECT().Unenroll(s.student.ID, s.class.ID).Return(gorm.ErrRecordNotFound)

	err := s.service.Unenroll(s.identity, s.student.ID, s.class.ID)

	s.ErrorIs(err, apperrors.ErrEnrollmentNotFound)
}

func (s *EnrollmentServiceTestSuite) TestRoster_Success() {
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(s.class, nil)
	s.mockRepo.EXPECT().ListStudentsByClass(s.class.ID).Return([]models.User{*s.student}, nil)

	roster, err := s.service.Roster(s.identity, s.class.ID)

	s.NoError(err)
	s.Len(roster, 1)
	s.Equal(s.student.ID, roster[0].ID)
}

func (s *EnrollmentServiceTestSuite) TestRoster_ClassNotFound() {
	s.mockClass.EXPECT().GetScoped(s.identity.OrganizationID, s.class.ID).Return(nil, gorm.ErrRecordNotFound)

	roster, err := s.service.Roster(s.identity, s.class.ID)

	s.Nil(roster)
	s.ErrorIs(err, apperrors.ErrClassNotFound)
}

func TestEnrollmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentServiceTestSuite))
}
