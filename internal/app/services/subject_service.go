package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
)

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	CreateSubject(ctx context.Context, subject *models.Subject) (int64, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	UpdateSubject(ctx context.Context, subject *models.Subject) error
	DeleteSubject(ctx context.Context, id int64) error
}

type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository) SubjectService {
	return &subjectServiceImpl{subjectRepo: subjectRepo}
}

func (s *subjectServiceImpl) CreateSubject(ctx context.Context, subject *models.Subject) (int64, error) {
	return s.subjectRepo.Create(ctx, subject)
}

func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	return s.subjectRepo.Update(ctx, subject)
}

func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.Delete(ctx, id)
}
