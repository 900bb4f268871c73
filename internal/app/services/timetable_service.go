package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
	"github.com/adeemchu/studentportal/internal/pkg/helpers"
)

// TimetableService defines the interface for timetable-related operations
type TimetableService interface {
	CreateEntry(ctx context.Context, entry *models.Timetable) (int64, error)
	GetEntryByID(ctx context.Context, id int64) (*models.Timetable, error)
	GetAllEntries(ctx context.Context) ([]*models.Timetable, error)
	GetClassTimetable(ctx context.Context, className string) ([]map[string]interface{}, error)
	UpdateEntry(ctx context.Context, entry *models.Timetable) error
	DeleteEntry(ctx context.Context, id int64) error
}

type timetableServiceImpl struct {
	timetableRepo *repositories.TimetableRepository
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(timetableRepo *repositories.TimetableRepository) TimetableService {
	return &timetableServiceImpl{timetableRepo: timetableRepo}
}

func validateTimetableEntry(entry *models.Timetable) error {
	if !entry.EndTime.Time.After(entry.StartTime.Time) {
		return apperrors.NewValidationError("end_time must be after start_time")
	}
	return nil
}

func (s *timetableServiceImpl) CreateEntry(ctx context.Context, entry *models.Timetable) (int64, error) {
	if err := validateTimetableEntry(entry); err != nil {
		return 0, err
	}
	return s.timetableRepo.Create(ctx, entry)
}

func (s *timetableServiceImpl) GetEntryByID(ctx context.Context, id int64) (*models.Timetable, error) {
	return s.timetableRepo.GetByID(ctx, id)
}

func (s *timetableServiceImpl) GetAllEntries(ctx context.Context) ([]*models.Timetable, error) {
	return s.timetableRepo.GetAll(ctx)
}

func (s *timetableServiceImpl) GetClassTimetable(ctx context.Context, className string) ([]map[string]interface{}, error) {
	rows, err := s.timetableRepo.GetByClassName(ctx, className)
	if err != nil {
		return nil, err
	}
	return helpers.NormalizeRows(rows), nil
}

func (s *timetableServiceImpl) UpdateEntry(ctx context.Context, entry *models.Timetable) error {
	if err := validateTimetableEntry(entry); err != nil {
		return err
	}
	return s.timetableRepo.Update(ctx, entry)
}

func (s *timetableServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	return s.timetableRepo.Delete(ctx, id)
}
