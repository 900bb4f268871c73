package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
	"github.com/adeemchu/studentportal/internal/pkg/dberrors"
	"github.com/adeemchu/studentportal/internal/pkg/logger"
)

const examColumns = "exam_id, exam_name, exam_date, class_id, subject_id, total_marks, passing_marks"

// ExamRepository handles exam database operations
type ExamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{db: db, sb: statementBuilder()}
}

func scanExam(row pgx.Row) (*models.Exam, error) {
	exam := &models.Exam{}
	err := row.Scan(
		&exam.ExamID, &exam.ExamName, &exam.ExamDate, &exam.ClassID,
		&exam.SubjectID, &exam.TotalMarks, &exam.PassingMarks,
	)
	if err != nil {
		return nil, err
	}
	return exam, nil
}

// Create inserts an exam and returns the generated exam_id.
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) (int64, error) {
	sql, args, err := r.sb.Insert("exams").
		Columns("exam_name", "exam_date", "class_id", "subject_id", "total_marks", "passing_marks").
		Values(exam.ExamName, exam.ExamDate, exam.ClassID, exam.SubjectID, exam.TotalMarks, exam.PassingMarks).
		Suffix("RETURNING exam_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create exam query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Msg("Error executing create exam query")
		return 0, fmt.Errorf("error creating exam: %w", err)
	}

	return id, nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	sql, args, err := r.sb.Select(examColumns).
		From("exams").
		Where(squirrel.Eq{"exam_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam query: %w", err)
	}

	exam, err := scanExam(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		logger.Error().Err(err).Int64("examID", id).Msg("Error scanning exam row")
		return nil, fmt.Errorf("error getting exam by ID: %w", err)
	}

	return exam, nil
}

// GetAllRows retrieves all exams as row-mappings, with the NUMERIC marks
// columns left for the caller to normalize into floats.
func (r *ExamRepository) GetAllRows(ctx context.Context) ([]map[string]interface{}, error) {
	sql, args, err := r.sb.Select(
		"exam_id", "exam_name",
		"to_char(exam_date, 'YYYY-MM-DD') AS exam_date",
		"class_id", "subject_id", "total_marks", "passing_marks",
	).
		From("exams").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all exams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all exams query")
		return nil, fmt.Errorf("error querying exams: %w", err)
	}

	exams, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("error collecting exam rows: %w", err)
	}

	return exams, nil
}

// Update replaces all fields of an existing exam.
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	sql, args, err := r.sb.Update("exams").
		SetMap(map[string]interface{}{
			"exam_name":     exam.ExamName,
			"exam_date":     exam.ExamDate,
			"class_id":      exam.ClassID,
			"subject_id":    exam.SubjectID,
			"total_marks":   exam.TotalMarks,
			"passing_marks": exam.PassingMarks,
		}).
		Where(squirrel.Eq{"exam_id": exam.ExamID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update exam query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Int64("examID", exam.ExamID).Msg("Error executing update exam query")
		return fmt.Errorf("error updating exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// Delete removes an exam by ID.
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("exams").
		Where(squirrel.Eq{"exam_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete exam query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRecordInUse
		}
		logger.Error().Err(err).Int64("examID", id).Msg("Error executing delete exam query")
		return fmt.Errorf("error deleting exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}
