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

const examResultColumns = "result_id, exam_id, student_id, marks_obtained, grade, remarks"

// ExamResultRepository handles exam result database operations
type ExamResultRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExamResultRepository creates a new ExamResultRepository
func NewExamResultRepository(db *pgxpool.Pool) *ExamResultRepository {
	return &ExamResultRepository{db: db, sb: statementBuilder()}
}

func scanExamResult(row pgx.Row) (*models.ExamResult, error) {
	result := &models.ExamResult{}
	err := row.Scan(
		&result.ResultID, &result.ExamID, &result.StudentID,
		&result.MarksObtained, &result.Grade, &result.Remarks,
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts an exam result and returns the generated result_id.
func (r *ExamResultRepository) Create(ctx context.Context, result *models.ExamResult) (int64, error) {
	sql, args, err := r.sb.Insert("exam_results").
		Columns("exam_id", "student_id", "marks_obtained", "grade", "remarks").
		Values(result.ExamID, result.StudentID, result.MarksObtained, result.Grade, result.Remarks).
		Suffix("RETURNING result_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create exam result query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Msg("Error executing create exam result query")
		return 0, fmt.Errorf("error creating exam result: %w", err)
	}

	return id, nil
}

// GetByID retrieves an exam result by ID
func (r *ExamResultRepository) GetByID(ctx context.Context, id int64) (*models.ExamResult, error) {
	sql, args, err := r.sb.Select(examResultColumns).
		From("exam_results").
		Where(squirrel.Eq{"result_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam result query: %w", err)
	}

	result, err := scanExamResult(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamResultNotFound
		}
		logger.Error().Err(err).Int64("resultID", id).Msg("Error scanning exam result row")
		return nil, fmt.Errorf("error getting exam result by ID: %w", err)
	}

	return result, nil
}

// GetAll retrieves all exam results
func (r *ExamResultRepository) GetAll(ctx context.Context) ([]*models.ExamResult, error) {
	sql, args, err := r.sb.Select(examResultColumns).
		From("exam_results").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all exam results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all exam results query")
		return nil, fmt.Errorf("error querying exam results: %w", err)
	}
	defer rows.Close()

	results := []*models.ExamResult{}
	for rows.Next() {
		result, err := scanExamResult(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning exam result row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exam result rows: %w", err)
	}

	return results, nil
}

// GetByStudent retrieves a student's results joined with exam and subject
// details, as row-mappings ready for decimal normalization.
func (r *ExamResultRepository) GetByStudent(ctx context.Context, studentID int64) ([]map[string]interface{}, error) {
	sql, args, err := r.sb.Select(
		"er.result_id", "er.exam_id", "er.student_id", "er.marks_obtained", "er.grade", "er.remarks",
		"e.exam_name",
		"to_char(e.exam_date, 'YYYY-MM-DD') AS exam_date",
		"s.subject_name",
		"e.total_marks", "e.passing_marks",
	).
		From("exam_results er").
		Join("exams e ON er.exam_id = e.exam_id").
		Join("subjects s ON e.subject_id = s.subject_id").
		Where(squirrel.Eq{"er.student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing student results query")
		return nil, fmt.Errorf("error querying student results: %w", err)
	}

	results, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("error collecting student result rows: %w", err)
	}

	return results, nil
}

// Update replaces all fields of an existing exam result.
func (r *ExamResultRepository) Update(ctx context.Context, result *models.ExamResult) error {
	sql, args, err := r.sb.Update("exam_results").
		SetMap(map[string]interface{}{
			"exam_id":        result.ExamID,
			"student_id":     result.StudentID,
			"marks_obtained": result.MarksObtained,
			"grade":          result.Grade,
			"remarks":        result.Remarks,
		}).
		Where(squirrel.Eq{"result_id": result.ResultID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update exam result query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Int64("resultID", result.ResultID).Msg("Error executing update exam result query")
		return fmt.Errorf("error updating exam result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamResultNotFound
	}

	return nil
}

// Delete removes an exam result by ID.
func (r *ExamResultRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("exam_results").
		Where(squirrel.Eq{"result_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete exam result query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resultID", id).Msg("Error executing delete exam result query")
		return fmt.Errorf("error deleting exam result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamResultNotFound
	}

	return nil
}
