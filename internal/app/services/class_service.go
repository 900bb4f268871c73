package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
)

// ClassService defines the interface for class-related operations
type ClassService interface {
	CreateClass(ctx context.Context, class *models.Class) (int64, error)
	GetClassByID(ctx context.Context, id int64) (*models.Class, error)
	GetAllClasses(ctx context.Context) ([]*models.Class, error)
	UpdateClass(ctx context.Context, class *models.Class) error
	DeleteClass(ctx context.Context, id int64) error
}

type classServiceImpl struct {
	classRepo *repositories.ClassRepository
}

// NewClassService creates a new class service instance
func NewClassService(classRepo *repositories.ClassRepository) ClassService {
	return &classServiceImpl{classRepo: classRepo}
}

func (s *classServiceImpl) CreateClass(ctx context.Context, class *models.Class) (int64, error) {
	return s.classRepo.Create(ctx, class)
}

func (s *classServiceImpl) GetClassByID(ctx context.Context, id int64) (*models.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]*models.Class, error) {
	return s.classRepo.GetAll(ctx)
}

func (s *classServiceImpl) UpdateClass(ctx context.Context, class *models.Class) error {
	return s.classRepo.Update(ctx, class)
}

func (s *classServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	return s.classRepo.Delete(ctx, id)
}
