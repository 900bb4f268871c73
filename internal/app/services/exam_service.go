package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
	"github.com/adeemchu/studentportal/internal/pkg/helpers"
)

// ExamService defines the interface for exam-related operations
type ExamService interface {
	CreateExam(ctx context.Context, exam *models.Exam) (int64, error)
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	GetAllExams(ctx context.Context) ([]map[string]interface{}, error)
	UpdateExam(ctx context.Context, exam *models.Exam) error
	DeleteExam(ctx context.Context, id int64) error
}

type examServiceImpl struct {
	examRepo *repositories.ExamRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo *repositories.ExamRepository) ExamService {
	return &examServiceImpl{examRepo: examRepo}
}

func validateExam(exam *models.Exam) error {
	if exam.PassingMarks > exam.TotalMarks {
		return apperrors.NewValidationError("passing_marks cannot exceed total_marks")
	}
	return nil
}

func (s *examServiceImpl) CreateExam(ctx context.Context, exam *models.Exam) (int64, error) {
	if err := validateExam(exam); err != nil {
		return 0, err
	}
	return s.examRepo.Create(ctx, exam)
}

func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

// GetAllExams returns exam rows with NUMERIC mark columns narrowed to floats.
func (s *examServiceImpl) GetAllExams(ctx context.Context) ([]map[string]interface{}, error) {
	rows, err := s.examRepo.GetAllRows(ctx)
	if err != nil {
		return nil, err
	}
	return helpers.NormalizeRows(rows), nil
}

func (s *examServiceImpl) UpdateExam(ctx context.Context, exam *models.Exam) error {
	if err := validateExam(exam); err != nil {
		return err
	}
	return s.examRepo.Update(ctx, exam)
}

func (s *examServiceImpl) DeleteExam(ctx context.Context, id int64) error {
	return s.examRepo.Delete(ctx, id)
}

// ExamResultService defines the interface for exam result operations
type ExamResultService interface {
	CreateResult(ctx context.Context, result *models.ExamResult) (int64, error)
	GetResultByID(ctx context.Context, id int64) (*models.ExamResult, error)
	GetAllResults(ctx context.Context) ([]*models.ExamResult, error)
	GetStudentResults(ctx context.Context, studentID int64) ([]map[string]interface{}, error)
	UpdateResult(ctx context.Context, result *models.ExamResult) error
	DeleteResult(ctx context.Context, id int64) error
}

type examResultServiceImpl struct {
	resultRepo *repositories.ExamResultRepository
}

// NewExamResultService creates a new exam result service instance
func NewExamResultService(resultRepo *repositories.ExamResultRepository) ExamResultService {
	return &examResultServiceImpl{resultRepo: resultRepo}
}

func (s *examResultServiceImpl) CreateResult(ctx context.Context, result *models.ExamResult) (int64, error) {
	return s.resultRepo.Create(ctx, result)
}

func (s *examResultServiceImpl) GetResultByID(ctx context.Context, id int64) (*models.ExamResult, error) {
	return s.resultRepo.GetByID(ctx, id)
}

func (s *examResultServiceImpl) GetAllResults(ctx context.Context) ([]*models.ExamResult, error) {
	return s.resultRepo.GetAll(ctx)
}

// GetStudentResults returns a student's results joined with exam and subject
// details, decimals narrowed to floats.
func (s *examResultServiceImpl) GetStudentResults(ctx context.Context, studentID int64) ([]map[string]interface{}, error) {
	rows, err := s.resultRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return helpers.NormalizeRows(rows), nil
}

func (s *examResultServiceImpl) UpdateResult(ctx context.Context, result *models.ExamResult) error {
	return s.resultRepo.Update(ctx, result)
}

func (s *examResultServiceImpl) DeleteResult(ctx context.Context, id int64) error {
	return s.resultRepo.Delete(ctx, id)
}
