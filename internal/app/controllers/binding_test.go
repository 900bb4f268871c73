package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
)

// Requests omitting a required date or time field, or sending it as "",
// must be rejected at binding time without reaching the service layer.

type stubExamService struct {
	created bool
}

func (s *stubExamService) CreateExam(context.Context, *models.Exam) (int64, error) {
	s.created = true
	return 1, nil
}
func (s *stubExamService) GetExamByID(context.Context, int64) (*models.Exam, error) {
	return nil, apperrors.ErrExamNotFound
}
func (s *stubExamService) GetAllExams(context.Context) ([]map[string]interface{}, error) {
	return nil, nil
}
func (s *stubExamService) UpdateExam(context.Context, *models.Exam) error { return nil }
func (s *stubExamService) DeleteExam(context.Context, int64) error        { return nil }

type stubTimetableService struct {
	created bool
}

func (s *stubTimetableService) CreateEntry(context.Context, *models.Timetable) (int64, error) {
	s.created = true
	return 1, nil
}
func (s *stubTimetableService) GetEntryByID(context.Context, int64) (*models.Timetable, error) {
	return nil, apperrors.ErrTimetableNotFound
}
func (s *stubTimetableService) GetAllEntries(context.Context) ([]*models.Timetable, error) {
	return nil, nil
}
func (s *stubTimetableService) GetClassTimetable(context.Context, string) ([]map[string]interface{}, error) {
	return nil, nil
}
func (s *stubTimetableService) UpdateEntry(context.Context, *models.Timetable) error { return nil }
func (s *stubTimetableService) DeleteEntry(context.Context, int64) error             { return nil }

type stubFeePaymentService struct {
	created bool
}

func (s *stubFeePaymentService) CreatePayment(context.Context, *models.FeePayment) (int64, error) {
	s.created = true
	return 1, nil
}
func (s *stubFeePaymentService) GetPaymentByID(context.Context, int64) (*models.FeePayment, error) {
	return nil, apperrors.ErrFeePaymentNotFound
}
func (s *stubFeePaymentService) GetAllPayments(context.Context) ([]*models.FeePayment, error) {
	return nil, nil
}
func (s *stubFeePaymentService) GetFamilyPayments(context.Context, int64) ([]map[string]interface{}, error) {
	return nil, nil
}
func (s *stubFeePaymentService) UpdatePayment(context.Context, *models.FeePayment) error { return nil }
func (s *stubFeePaymentService) DeletePayment(context.Context, int64) error              { return nil }

type countingAttendanceService struct {
	stubAttendanceService
	created bool
}

func (s *countingAttendanceService) CreateAttendance(context.Context, *models.Attendance) (int64, error) {
	s.created = true
	return 1, nil
}

func TestCreateStudentEmptyDateOfBirth(t *testing.T) {
	svc := newStubStudentService()
	router := studentTestRouter(svc, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/students",
		`{"family_id": 1, "first_name": "Ali", "last_name": "Ahmed", "date_of_birth": "", "gender": "male", "current_class": "Class 5"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.students)
}

func TestCreateExamMissingExamDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubExamService{}
	router := gin.New()
	router.POST("/api/exams", NewExamController(svc).CreateExam)

	w := doJSON(t, router, http.MethodPost, "/api/exams",
		`{"exam_name": "Midterm", "class_id": 1, "subject_id": 2, "total_marks": 100, "passing_marks": 40}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.created)
}

func TestCreateTimetableEntryMissingTimes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]string{
		"missing start_time": `{"class_id": 1, "subject_id": 2, "teacher_id": 3, "day_of_week": "Monday", "end_time": "09:45"}`,
		"missing end_time":   `{"class_id": 1, "subject_id": 2, "teacher_id": 3, "day_of_week": "Monday", "start_time": "09:00"}`,
		"empty start_time":   `{"class_id": 1, "subject_id": 2, "teacher_id": 3, "day_of_week": "Monday", "start_time": "", "end_time": "09:45"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &stubTimetableService{}
			router := gin.New()
			router.POST("/api/timetable", NewTimetableController(svc).CreateEntry)

			w := doJSON(t, router, http.MethodPost, "/api/timetable", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, svc.created)
		})
	}
}

func TestCreateAttendanceMissingDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &countingAttendanceService{}
	router := gin.New()
	router.POST("/api/attendance", NewAttendanceController(svc).CreateAttendance)

	w := doJSON(t, router, http.MethodPost, "/api/attendance",
		`{"student_id": 1, "status": "present", "recorded_by": 1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.created)
}

func TestCreateFeePaymentMissingPaymentDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubFeePaymentService{}
	router := gin.New()
	router.POST("/api/fee-payments", NewFeePaymentController(svc).CreatePayment)

	w := doJSON(t, router, http.MethodPost, "/api/fee-payments",
		`{"family_id": 1, "fee_id": 2, "amount_paid": 500, "payment_method": "cash", "received_by": 1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.created)
}

func TestCreateExamWithDateSucceeds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubExamService{}
	router := gin.New()
	router.POST("/api/exams", NewExamController(svc).CreateExam)

	w := doJSON(t, router, http.MethodPost, "/api/exams",
		`{"exam_name": "Midterm", "exam_date": "2026-03-10", "class_id": 1, "subject_id": 2, "total_marks": 100, "passing_marks": 40}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.created)
}
