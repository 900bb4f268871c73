package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
)

type stubStudentService struct {
	students map[int64]*models.Student
	nextID   int64
}

func newStubStudentService() *stubStudentService {
	return &stubStudentService{students: map[int64]*models.Student{}, nextID: 1}
}

func (s *stubStudentService) CreateStudent(_ context.Context, student *models.Student) (int64, error) {
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}
	id := s.nextID
	s.nextID++
	student.StudentID = id
	s.students[id] = student
	return id, nil
}

func (s *stubStudentService) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *stubStudentService) GetAllStudents(_ context.Context) ([]*models.Student, error) {
	out := []*models.Student{}
	for _, st := range s.students {
		out = append(out, st)
	}
	return out, nil
}

func (s *stubStudentService) UpdateStudent(_ context.Context, student *models.Student) error {
	if _, ok := s.students[student.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	s.students[student.StudentID] = student
	return nil
}

func (s *stubStudentService) DeleteStudent(_ context.Context, id int64) error {
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}

type stubResultService struct {
	rows map[int64][]map[string]interface{}
}

func (s *stubResultService) CreateResult(context.Context, *models.ExamResult) (int64, error) {
	return 0, nil
}
func (s *stubResultService) GetResultByID(context.Context, int64) (*models.ExamResult, error) {
	return nil, apperrors.ErrExamResultNotFound
}
func (s *stubResultService) GetAllResults(context.Context) ([]*models.ExamResult, error) {
	return nil, nil
}
func (s *stubResultService) GetStudentResults(_ context.Context, studentID int64) ([]map[string]interface{}, error) {
	return s.rows[studentID], nil
}
func (s *stubResultService) UpdateResult(context.Context, *models.ExamResult) error { return nil }
func (s *stubResultService) DeleteResult(context.Context, int64) error              { return nil }

type stubAttendanceService struct {
	rows map[int64][]map[string]interface{}
}

func (s *stubAttendanceService) CreateAttendance(context.Context, *models.Attendance) (int64, error) {
	return 0, nil
}
func (s *stubAttendanceService) GetAttendanceByID(context.Context, int64) (*models.Attendance, error) {
	return nil, apperrors.ErrAttendanceNotFound
}
func (s *stubAttendanceService) GetAllAttendance(context.Context) ([]*models.Attendance, error) {
	return nil, nil
}
func (s *stubAttendanceService) GetStudentAttendance(_ context.Context, studentID int64) ([]map[string]interface{}, error) {
	return s.rows[studentID], nil
}
func (s *stubAttendanceService) UpdateAttendance(context.Context, *models.Attendance) error {
	return nil
}
func (s *stubAttendanceService) DeleteAttendance(context.Context, int64) error { return nil }

func studentTestRouter(students *stubStudentService, results *stubResultService, attendance *stubAttendanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if results == nil {
		results = &stubResultService{rows: map[int64][]map[string]interface{}{}}
	}
	if attendance == nil {
		attendance = &stubAttendanceService{rows: map[int64][]map[string]interface{}{}}
	}
	ctrl := NewStudentController(students, results, attendance)
	router := gin.New()
	router.POST("/api/students", ctrl.CreateStudent)
	router.GET("/api/students/:student_id", ctrl.GetStudent)
	router.GET("/api/students/:student_id/results", ctrl.GetStudentResults)
	router.GET("/api/students/:student_id/attendance", ctrl.GetStudentAttendance)
	return router
}

func TestCreateStudentDefaultsStatus(t *testing.T) {
	svc := newStubStudentService()
	router := studentTestRouter(svc, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/students",
		`{"family_id": 1, "first_name": "Ali", "last_name": "Ahmed", "date_of_birth": "2012-04-10", "gender": "male", "current_class": "Class 5"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"student_id": 1}`, w.Body.String())
	assert.Equal(t, "active", svc.students[1].Status)
}

func TestCreateStudentEmptyAdmissionDate(t *testing.T) {
	svc := newStubStudentService()
	router := studentTestRouter(svc, nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/students",
		`{"family_id": 1, "first_name": "Sara", "last_name": "Khan", "date_of_birth": "2013-01-20", "gender": "female", "current_class": "Class 4", "admission_date": ""}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, svc.students[1].AdmissionDate.Valid)
}

func TestCreateStudentMissingDateOfBirth(t *testing.T) {
	router := studentTestRouter(newStubStudentService(), nil, nil)

	w := doJSON(t, router, http.MethodPost, "/api/students",
		`{"family_id": 1, "first_name": "Ali", "last_name": "Ahmed", "gender": "male", "current_class": "Class 5"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStudentResultsView(t *testing.T) {
	results := &stubResultService{rows: map[int64][]map[string]interface{}{
		3: {{
			"result_id":      int64(1),
			"exam_name":      "Midterm",
			"subject_name":   "Mathematics",
			"marks_obtained": 87.5,
			"total_marks":    100.0,
		}},
	}}
	router := studentTestRouter(newStubStudentService(), results, nil)

	w := doJSON(t, router, http.MethodGet, "/api/students/3/results", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"marks_obtained":87.5`)
	assert.Contains(t, w.Body.String(), `"subject_name":"Mathematics"`)
}

func TestGetStudentAttendanceView(t *testing.T) {
	attendance := &stubAttendanceService{rows: map[int64][]map[string]interface{}{
		5: {{
			"attendance_id":    int64(9),
			"date":             "2026-02-14",
			"status":           "present",
			"recorded_by_name": "System Administrator",
		}},
	}}
	router := studentTestRouter(newStubStudentService(), nil, attendance)

	w := doJSON(t, router, http.MethodGet, "/api/students/5/attendance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recorded_by_name":"System Administrator"`)
}

func TestGetStudentNotFound(t *testing.T) {
	router := studentTestRouter(newStubStudentService(), nil, nil)

	w := doJSON(t, router, http.MethodGet, "/api/students/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Student not found"}`, w.Body.String())
}
