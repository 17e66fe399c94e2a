package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"classroom-backend/internal/auth"
	"classroom-backend/internal/authz"
	"classroom-backend/internal/database/models"
	apperrors "classroom-backend/internal/errors"
	"classroom-backend/internal/mocks/servicemocks"
	"classroom-backend/internal/service"
	"classroom-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EnrollmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockEnrollmentServiceInterface
	http        *testutils.HTTPTestSuite
	identity    *authz.Identity
}

func (s *EnrollmentHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockEnrollmentServiceInterface(s.ctrl)
	s.identity = &authz.Identity{
		UserID:         uuid.New(),
		Role:           models.UserRoleTeacher,
		OrganizationID: uuid.New(),
	}

	s.http = testutils.SetupHTTPTest()
	s.http.Router.Use(func(c *gin.Context) {
		auth.SetIdentity(c, s.identity)
		c.Next()
	})

	handler := NewEnrollmentHandler(s.mockService)
	s.http.Router.POST("/enrollments", handler.Enroll)
	s.http.Router.DELETE("/enrollments", handler.Unenroll)
	s.http.Router.GET("/enrollments/class/:classId", handler.GetRoster)
}

func (s *EnrollmentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EnrollmentHandlerTestSuite) TestEnroll_Success() {
	studentID, classID := uuid.New(), uuid.New()
	s.mockService.EXPECT().
		Enroll(s.identity, &service.EnrollRequest{StudentID: studentID, ClassID: classID}).
		Return(&service.EnrollmentResponse{StudentID: studentID, ClassID: classID}, nil)

	rec := s.http.MakeRequest(http.MethodPost, "/enrollments", map[string]string{
		"student_id": studentID.String(),
		"class_id":   classID.String(),
	})

	s.Equal(http.StatusCreated, rec.Code)
	var resp service.EnrollmentResponse
	testutils.UnwrapData(s.T(), rec, &resp)
	s.Equal(studentID, resp.StudentID)
}

func (s *EnrollmentHandlerTestSuite) TestEnroll_CapacityExceeded() {
	s.mockService.EXPECT().
		Enroll(s.identity, gomock.Any()).
		Return(nil, apperrors.NewCapacityError("class", 30))

	rec := s.http.MakeRequest(http.MethodPost, "/enrollments", map[string]string{
		"student_id": uuid.NewString(),
		"class_id":   uuid.NewString(),
	})

	testutils.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "capacity exceeded")
}

func (s *EnrollmentHandlerTestSuite) TestEnroll_Duplicate() {
	s.mockService.EXPECT().
		Enroll(s.identity, gomock.Any()).
		Return(nil, apperrors.ErrEnrollmentExists)

	rec := s.http.MakeRequest(http.MethodPost, "/enrollments", map[string]string{
		"student_id": uuid.NewString(),
		"class_id":   uuid.NewString(),
	})

	testutils.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflict")
}

func (s *EnrollmentHandlerTestSuite) TestUnenroll_Success() {
	studentID, classID := uuid.New(), uuid.New()
	s.mockService.EXPECT().Unenroll(s.identity, studentID, classID).Return(nil)

	rec := s.http.MakeRequest(http.MethodDelete,
		fmt.Sprintf("/enrollments?studentId=%s&classId=%s", studentID, classID), nil)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *EnrollmentHandlerTestSuite) TestUnenroll_InvalidIDs() {
	rec := s.http.MakeRequest(http.MethodDelete, "/enrollments?studentId=nope&classId="+uuid.NewString(), nil)
	testutils.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid student ID")

	rec = s.http.MakeRequest(http.MethodDelete, "/enrollments?studentId="+uuid.NewString()+"&classId=nope", nil)
	testutils.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid class ID")
}

func (s *EnrollmentHandlerTestSuite) TestUnenroll_NotEnrolled() {
	studentID, classID := uuid.New(), uuid.New()
	s.mockService.EXPECT().Unenroll(s.identity, studentID, classID).Return(apperrors.ErrEnrollmentNotFound)

	rec := s.http.MakeRequest(http.MethodDelete,
		fmt.Sprintf("/enrollments?studentId=%s&classId=%s", studentID, classID), nil)

	testutils.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
}

func (s *EnrollmentHandlerTestSuite) TestRoster_Success() {
	classID := uuid.New()
	s.mockService.EXPECT().
		Roster(s.identity, classID).
		Return([]service.UserResponse{{ID: uuid.New(), Name: "Ada", Role: "student"}}, nil)

	rec := s.http.MakeRequest(http.MethodGet, "/enrollments/class/"+classID.String(), nil)

	s.Equal(http.StatusOK, rec.Code)
	var roster []service.UserResponse
	testutils.UnwrapData(s.T(), rec, &roster)
	s.Len(roster, 1)
	s.Equal("Ada", roster[0].Name)
}

func (s *EnrollmentHandlerTestSuite) TestRoster_ClassNotFound() {
	classID := uuid.New()
	s.mockService.EXPECT().Roster(s.identity, classID).Return(nil, apperrors.ErrClassNotFound)

	rec := s.http.MakeRequest(http.MethodGet, "/enrollments/class/"+classID.String(), nil)
	testutils.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
}

func TestEnrollmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentHandlerTestSuite))
}
