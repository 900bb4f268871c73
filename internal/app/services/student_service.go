package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

// applyDefaults fills fields the caller may omit. A student with no explicit
// status is considered active.
func applyStudentDefaults(student *models.Student) {
	if student.Status == "" {
		student.Status = models.StudentStatusActive
	}
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	applyStudentDefaults(student)
	return s.studentRepo.Create(ctx, student)
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	applyStudentDefaults(student)
	return s.studentRepo.Update(ctx, student)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
