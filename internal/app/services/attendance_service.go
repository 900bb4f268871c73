package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
	"github.com/adeemchu/studentportal/internal/pkg/helpers"
)

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	CreateAttendance(ctx context.Context, record *models.Attendance) (int64, error)
	GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error)
	GetAllAttendance(ctx context.Context) ([]*models.Attendance, error)
	GetStudentAttendance(ctx context.Context, studentID int64) ([]map[string]interface{}, error)
	UpdateAttendance(ctx context.Context, record *models.Attendance) error
	DeleteAttendance(ctx context.Context, id int64) error
}

type attendanceServiceImpl struct {
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo}
}

func (s *attendanceServiceImpl) CreateAttendance(ctx context.Context, record *models.Attendance) (int64, error) {
	return s.attendanceRepo.Create(ctx, record)
}

func (s *attendanceServiceImpl) GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

func (s *attendanceServiceImpl) GetAllAttendance(ctx context.Context) ([]*models.Attendance, error) {
	return s.attendanceRepo.GetAll(ctx)
}

// GetStudentAttendance returns a student's attendance history, most
// recent first, with the recording user's name joined in.
func (s *attendanceServiceImpl) GetStudentAttendance(ctx context.Context, studentID int64) ([]map[string]interface{}, error) {
	rows, err := s.attendanceRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return helpers.NormalizeRows(rows), nil
}

func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, record *models.Attendance) error {
	return s.attendanceRepo.Update(ctx, record)
}

func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}
