package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
)

// FamilyService defines the interface for family-related operations
type FamilyService interface {
	CreateFamily(ctx context.Context, family *models.Family) (int64, error)
	GetFamilyByID(ctx context.Context, id int64) (*models.Family, error)
	GetAllFamilies(ctx context.Context) ([]*models.Family, error)
	UpdateFamily(ctx context.Context, family *models.Family) error
	DeleteFamily(ctx context.Context, id int64) error
}

type familyServiceImpl struct {
	familyRepo *repositories.FamilyRepository
}

// NewFamilyService creates a new family service instance
func NewFamilyService(familyRepo *repositories.FamilyRepository) FamilyService {
	return &familyServiceImpl{familyRepo: familyRepo}
}

func (s *familyServiceImpl) CreateFamily(ctx context.Context, family *models.Family) (int64, error) {
	return s.familyRepo.Create(ctx, family)
}

func (s *familyServiceImpl) GetFamilyByID(ctx context.Context, id int64) (*models.Family, error) {
	return s.familyRepo.GetByID(ctx, id)
}

func (s *familyServiceImpl) GetAllFamilies(ctx context.Context) ([]*models.Family, error) {
	return s.familyRepo.GetAll(ctx)
}

func (s *familyServiceImpl) UpdateFamily(ctx context.Context, family *models.Family) error {
	return s.familyRepo.Update(ctx, family)
}

func (s *familyServiceImpl) DeleteFamily(ctx context.Context, id int64) error {
	return s.familyRepo.Delete(ctx, id)
}
