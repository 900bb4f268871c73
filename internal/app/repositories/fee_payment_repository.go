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

const feePaymentColumns = "payment_id, family_id, fee_id, amount_paid, payment_date, payment_method, transaction_reference, received_by, remarks"

// FeePaymentRepository handles fee payment database operations
type FeePaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeePaymentRepository creates a new FeePaymentRepository
func NewFeePaymentRepository(db *pgxpool.Pool) *FeePaymentRepository {
	return &FeePaymentRepository{db: db, sb: statementBuilder()}
}

func scanFeePayment(row pgx.Row) (*models.FeePayment, error) {
	payment := &models.FeePayment{}
	err := row.Scan(
		&payment.PaymentID, &payment.FamilyID, &payment.FeeID, &payment.AmountPaid,
		&payment.PaymentDate, &payment.PaymentMethod, &payment.TransactionReference,
		&payment.ReceivedBy, &payment.Remarks,
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Create inserts a fee payment and returns the generated payment_id.
func (r *FeePaymentRepository) Create(ctx context.Context, payment *models.FeePayment) (int64, error) {
	sql, args, err := r.sb.Insert("fee_payments").
		Columns("family_id", "fee_id", "amount_paid", "payment_date", "payment_method",
			"transaction_reference", "received_by", "remarks").
		Values(payment.FamilyID, payment.FeeID, payment.AmountPaid, payment.PaymentDate,
			payment.PaymentMethod, payment.TransactionReference, payment.ReceivedBy, payment.Remarks).
		Suffix("RETURNING payment_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create fee payment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Msg("Error executing create fee payment query")
		return 0, fmt.Errorf("error creating fee payment: %w", err)
	}

	return id, nil
}

// GetByID retrieves a fee payment by ID
func (r *FeePaymentRepository) GetByID(ctx context.Context, id int64) (*models.FeePayment, error) {
	sql, args, err := r.sb.Select(feePaymentColumns).
		From("fee_payments").
		Where(squirrel.Eq{"payment_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get fee payment query: %w", err)
	}

	payment, err := scanFeePayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeePaymentNotFound
		}
		logger.Error().Err(err).Int64("paymentID", id).Msg("Error scanning fee payment row")
		return nil, fmt.Errorf("error getting fee payment by ID: %w", err)
	}

	return payment, nil
}

// GetAll retrieves all fee payments
func (r *FeePaymentRepository) GetAll(ctx context.Context) ([]*models.FeePayment, error) {
	sql, args, err := r.sb.Select(feePaymentColumns).
		From("fee_payments").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all fee payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all fee payments query")
		return nil, fmt.Errorf("error querying fee payments: %w", err)
	}
	defer rows.Close()

	payments := []*models.FeePayment{}
	for rows.Next() {
		payment, err := scanFeePayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning fee payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee payment rows: %w", err)
	}

	return payments, nil
}

// GetByFamily retrieves a family's payments joined with the fee structure
// and the receiving user, as row-mappings ready for decimal normalization.
func (r *FeePaymentRepository) GetByFamily(ctx context.Context, familyID int64) ([]map[string]interface{}, error) {
	sql, args, err := r.sb.Select(
		"fp.payment_id", "fp.family_id", "fp.fee_id", "fp.amount_paid",
		"to_char(fp.payment_date, 'YYYY-MM-DD') AS payment_date",
		"fp.payment_method", "fp.transaction_reference", "fp.received_by", "fp.remarks",
		"fs.fee_name",
		"fs.amount AS fee_amount",
		"fs.frequency",
		"u.full_name AS received_by_name",
	).
		From("fee_payments fp").
		Join("fee_structure fs ON fp.fee_id = fs.fee_id").
		Join("users u ON fp.received_by = u.user_id").
		Where(squirrel.Eq{"fp.family_id": familyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build family payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("familyID", familyID).Msg("Error executing family payments query")
		return nil, fmt.Errorf("error querying family payments: %w", err)
	}

	payments, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("error collecting family payment rows: %w", err)
	}

	return payments, nil
}

// Update replaces all fields of an existing fee payment.
func (r *FeePaymentRepository) Update(ctx context.Context, payment *models.FeePayment) error {
	sql, args, err := r.sb.Update("fee_payments").
		SetMap(map[string]interface{}{
			"family_id":             payment.FamilyID,
			"fee_id":                payment.FeeID,
			"amount_paid":           payment.AmountPaid,
			"payment_date":          payment.PaymentDate,
			"payment_method":        payment.PaymentMethod,
			"transaction_reference": payment.TransactionReference,
			"received_by":           payment.ReceivedBy,
			"remarks":               payment.Remarks,
		}).
		Where(squirrel.Eq{"payment_id": payment.PaymentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update fee payment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInvalidReference
		}
		logger.Error().Err(err).Int64("paymentID", payment.PaymentID).Msg("Error executing update fee payment query")
		return fmt.Errorf("error updating fee payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeePaymentNotFound
	}

	return nil
}

// Delete removes a fee payment by ID.
func (r *FeePaymentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("fee_payments").
		Where(squirrel.Eq{"payment_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete fee payment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("paymentID", id).Msg("Error executing delete fee payment query")
		return fmt.Errorf("error deleting fee payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeePaymentNotFound
	}

	return nil
}
