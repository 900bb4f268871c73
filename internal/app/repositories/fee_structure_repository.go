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

const feeStructureColumns = "fee_id, class_id, fee_name, amount, frequency, academic_year, due_date"

// FeeStructureRepository handles fee structure database operations
type FeeStructureRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeeStructureRepository creates a new FeeStructureRepository
func NewFeeStructureRepository(db *pgxpool.Pool) *FeeStructureRepository {
	return &FeeStructureRepository{db: db, sb: statementBuilder()}
}

func scanFeeStructure(row pgx.Row) (*models.FeeStructure, error) {
	fee := &models.FeeStructure{}
	err := row.Scan(
		&fee.FeeID, &fee.ClassID, &fee.FeeName, &fee.Amount,
		&fee.Frequency, &fee.AcademicYear, &fee.DueDate,
	)
	if err != nil {
		return nil, err
	}
	return fee, nil
}

// Create inserts a fee structure and returns the generated fee_id.
func (r *FeeStructureRepository) Create(ctx context.Context, fee *models.FeeStructure) (int64, error) {
	sql, args, err := r.sb.Insert("fee_structure").
		Columns("class_id", "fee_name", "amount", "frequency", "academic_year", "due_date").
		Values(fee.ClassID, fee.FeeName, fee.Amount, fee.Frequency, fee.AcademicYear, fee.DueDate).
		Suffix("RETURNING fee_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create fee structure query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Msg("Error executing create fee structure query")
		return 0, fmt.Errorf("error creating fee structure: %w", err)
	}

	return id, nil
}

// GetByID retrieves a fee structure by ID
func (r *FeeStructureRepository) GetByID(ctx context.Context, id int64) (*models.FeeStructure, error) {
	sql, args, err := r.sb.Select(feeStructureColumns).
		From("fee_structure").
		Where(squirrel.Eq{"fee_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get fee structure query: %w", err)
	}

	fee, err := scanFeeStructure(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeStructureNotFound
		}
		logger.Error().Err(err).Int64("feeID", id).Msg("Error scanning fee structure row")
		return nil, fmt.Errorf("error getting fee structure by ID: %w", err)
	}

	return fee, nil
}

// GetAll retrieves all fee structures
func (r *FeeStructureRepository) GetAll(ctx context.Context) ([]*models.FeeStructure, error) {
	sql, args, err := r.sb.Select(feeStructureColumns).
		From("fee_structure").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all fee structures query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all fee structures query")
		return nil, fmt.Errorf("error querying fee structures: %w", err)
	}
	defer rows.Close()

	fees := []*models.FeeStructure{}
	for rows.Next() {
		fee, err := scanFeeStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning fee structure row: %w", err)
		}
		fees = append(fees, fee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee structure rows: %w", err)
	}

	return fees, nil
}

// Update replaces all fields of an existing fee structure.
func (r *FeeStructureRepository) Update(ctx context.Context, fee *models.FeeStructure) error {
	sql, args, err := r.sb.Update("fee_structure").
		SetMap(map[string]interface{}{
			"class_id":      fee.ClassID,
			"fee_name":      fee.FeeName,
			"amount":        fee.Amount,
			"frequency":     fee.Frequency,
			"academic_year": fee.AcademicYear,
			"due_date":      fee.DueDate,
		}).
		Where(squirrel.Eq{"fee_id": fee.FeeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update fee structure query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Int64("feeID", fee.FeeID).Msg("Error executing update fee structure query")
		return fmt.Errorf("error updating fee structure: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeStructureNotFound
	}

	return nil
}

// Delete removes a fee structure by ID.
func (r *FeeStructureRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("fee_structure").
		Where(squirrel.Eq{"fee_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete fee structure query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrRecordInUse
		}
		logger.Error().Err(err).Int64("feeID", id).Msg("Error executing delete fee structure query")
		return fmt.Errorf("error deleting fee structure: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeStructureNotFound
	}

	return nil
}
