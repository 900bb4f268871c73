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

// ClassRepository handles class database operations
type ClassRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{db: db, sb: statementBuilder()}
}

// Create inserts a class and returns the generated class_id.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (int64, error) {
	sql, args, err := r.sb.Insert("classes").
		Columns("class_name", "section", "academic_year").
		Values(class.ClassName, class.Section, class.AcademicYear).
		Suffix("RETURNING class_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create class query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create class query")
		return 0, fmt.Errorf("error creating class: %w", err)
	}

	return id, nil
}

// GetByID retrieves a class by ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	sql, args, err := r.sb.Select("class_id", "class_name", "section", "academic_year").
		From("classes").
		Where(squirrel.Eq{"class_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get class query: %w", err)
	}

	class := &models.Class{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&class.ClassID, &class.ClassName, &class.Section, &class.AcademicYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error scanning class row")
		return nil, fmt.Errorf("error getting class by ID: %w", err)
	}

	return class, nil
}

// GetAll retrieves all classes
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.Class, error) {
	sql, args, err := r.sb.Select("class_id", "class_name", "section", "academic_year").
		From("classes").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all classes query")
		return nil, fmt.Errorf("error querying classes: %w", err)
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ClassID, &class.ClassName, &class.Section, &class.AcademicYear); err != nil {
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, nil
}

// Update replaces all fields of an existing class.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	sql, args, err := r.sb.Update("classes").
		SetMap(map[string]interface{}{
			"class_name":    class.ClassName,
			"section":       class.Section,
			"academic_year": class.AcademicYear,
		}).
		Where(squirrel.Eq{"class_id": class.ClassID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update class query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classID", class.ClassID).Msg("Error executing update class query")
		return fmt.Errorf("error updating class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}

// Delete removes a class by ID.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("classes").
		Where(squirrel.Eq{"class_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete class query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRecordInUse
		}
		logger.Error().Err(err).Int64("classID", id).Msg("Error executing delete class query")
		return fmt.Errorf("error deleting class: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}

	return nil
}
