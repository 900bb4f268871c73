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

const teacherColumns = "teacher_id, first_name, last_name, email, phone, qualification, specialization, joining_date"

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db, sb: statementBuilder()}
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := row.Scan(
		&teacher.TeacherID, &teacher.FirstName, &teacher.LastName, &teacher.Email,
		&teacher.Phone, &teacher.Qualification, &teacher.Specialization, &teacher.JoiningDate,
	)
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

// Create inserts a teacher and returns the generated teacher_id.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	sql, args, err := r.sb.Insert("teachers").
		Columns("first_name", "last_name", "email", "phone", "qualification", "specialization", "joining_date").
		Values(teacher.FirstName, teacher.LastName, teacher.Email, teacher.Phone,
			teacher.Qualification, teacher.Specialization, teacher.JoiningDate).
		Suffix("RETURNING teacher_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create teacher query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create teacher query")
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}

	return id, nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns).
		From("teachers").
		Where(squirrel.Eq{"teacher_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by ID: %w", err)
	}

	return teacher, nil
}

// GetAll retrieves all teachers
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns).
		From("teachers").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// Update replaces all fields of an existing teacher.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Update("teachers").
		SetMap(map[string]interface{}{
			"first_name":     teacher.FirstName,
			"last_name":      teacher.LastName,
			"email":          teacher.Email,
			"phone":          teacher.Phone,
			"qualification":  teacher.Qualification,
			"specialization": teacher.Specialization,
			"joining_date":   teacher.JoiningDate,
		}).
		Where(squirrel.Eq{"teacher_id": teacher.TeacherID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", teacher.TeacherID).Msg("Error executing update teacher query")
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete removes a teacher by ID.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"teacher_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRecordInUse
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error executing delete teacher query")
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}
