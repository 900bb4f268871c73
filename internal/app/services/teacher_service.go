package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
)

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *models.Teacher) error
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherServiceImpl struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo *repositories.TeacherRepository) TeacherService {
	return &teacherServiceImpl{teacherRepo: teacherRepo}
}

func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	return s.teacherRepo.Create(ctx, teacher)
}

func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, teacher *models.Teacher) error {
	return s.teacherRepo.Update(ctx, teacher)
}

func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	return s.teacherRepo.Delete(ctx, id)
}
