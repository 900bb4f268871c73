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

// FamilyRepository handles family database operations
type FamilyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFamilyRepository creates a new FamilyRepository
func NewFamilyRepository(db *pgxpool.Pool) *FamilyRepository {
	return &FamilyRepository{db: db, sb: statementBuilder()}
}

// Create inserts a family and returns the generated family_id.
func (r *FamilyRepository) Create(ctx context.Context, family *models.Family) (int64, error) {
	sql, args, err := r.sb.Insert("families").
		Columns("family_name", "address", "contact_number", "email").
		Values(family.FamilyName, family.Address, family.ContactNumber, family.Email).
		Suffix("RETURNING family_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create family query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create family query")
		return 0, fmt.Errorf("error creating family: %w", err)
	}

	return id, nil
}

// GetByID retrieves a family by ID
func (r *FamilyRepository) GetByID(ctx context.Context, id int64) (*models.Family, error) {
	sql, args, err := r.sb.Select("family_id", "family_name", "address", "contact_number", "email").
		From("families").
		Where(squirrel.Eq{"family_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get family query: %w", err)
	}

	family := &models.Family{}
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&family.FamilyID, &family.FamilyName, &family.Address, &family.ContactNumber, &family.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFamilyNotFound
		}
		logger.Error().Err(err).Int64("familyID", id).Msg("Error scanning family row")
		return nil, fmt.Errorf("error getting family by ID: %w", err)
	}

	return family, nil
}

// GetAll retrieves all families
func (r *FamilyRepository) GetAll(ctx context.Context) ([]*models.Family, error) {
	sql, args, err := r.sb.Select("family_id", "family_name", "address", "contact_number", "email").
		From("families").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all families query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all families query")
		return nil, fmt.Errorf("error querying families: %w", err)
	}
	defer rows.Close()

	families := []*models.Family{}
	for rows.Next() {
		family := &models.Family{}
		if err := rows.Scan(&family.FamilyID, &family.FamilyName, &family.Address, &family.ContactNumber, &family.Email); err != nil {
			return nil, fmt.Errorf("error scanning family row: %w", err)
		}
		families = append(families, family)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating family rows: %w", err)
	}

	return families, nil
}

// Update replaces all fields of an existing family.
func (r *FamilyRepository) Update(ctx context.Context, family *models.Family) error {
	sql, args, err := r.sb.Update("families").
		SetMap(map[string]interface{}{
			"family_name":    family.FamilyName,
			"address":        family.Address,
			"contact_number": family.ContactNumber,
			"email":          family.Email,
		}).
		Where(squirrel.Eq{"family_id": family.FamilyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update family query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("familyID", family.FamilyID).Msg("Error executing update family query")
		return fmt.Errorf("error updating family: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFamilyNotFound
	}

	return nil
}

// Delete removes a family by ID.
func (r *FamilyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("families").
		Where(squirrel.Eq{"family_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete family query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			// Students or payments still reference the family
			return apperrors.ErrRecordInUse
		}
		logger.Error().Err(err).Int64("familyID", id).Msg("Error executing delete family query")
		return fmt.Errorf("error deleting family: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFamilyNotFound
	}

	return nil
}
