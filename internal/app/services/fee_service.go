package services

import (
	"context"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/repositories"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
	"github.com/adeemchu/studentportal/internal/pkg/helpers"
)

// FeeStructureService defines the interface for fee structure operations
type FeeStructureService interface {
	CreateFeeStructure(ctx context.Context, fee *models.FeeStructure) (int64, error)
	GetFeeStructureByID(ctx context.Context, id int64) (*models.FeeStructure, error)
	GetAllFeeStructures(ctx context.Context) ([]*models.FeeStructure, error)
	UpdateFeeStructure(ctx context.Context, fee *models.FeeStructure) error
	DeleteFeeStructure(ctx context.Context, id int64) error
}

type feeStructureServiceImpl struct {
	feeRepo *repositories.FeeStructureRepository
}

// NewFeeStructureService creates a new fee structure service instance
func NewFeeStructureService(feeRepo *repositories.FeeStructureRepository) FeeStructureService {
	return &feeStructureServiceImpl{feeRepo: feeRepo}
}

func (s *feeStructureServiceImpl) CreateFeeStructure(ctx context.Context, fee *models.FeeStructure) (int64, error) {
	return s.feeRepo.Create(ctx, fee)
}

func (s *feeStructureServiceImpl) GetFeeStructureByID(ctx context.Context, id int64) (*models.FeeStructure, error) {
	return s.feeRepo.GetByID(ctx, id)
}

func (s *feeStructureServiceImpl) GetAllFeeStructures(ctx context.Context) ([]*models.FeeStructure, error) {
	return s.feeRepo.GetAll(ctx)
}

func (s *feeStructureServiceImpl) UpdateFeeStructure(ctx context.Context, fee *models.FeeStructure) error {
	return s.feeRepo.Update(ctx, fee)
}

func (s *feeStructureServiceImpl) DeleteFeeStructure(ctx context.Context, id int64) error {
	return s.feeRepo.Delete(ctx, id)
}

// FeePaymentService defines the interface for fee payment operations
type FeePaymentService interface {
	CreatePayment(ctx context.Context, payment *models.FeePayment) (int64, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.FeePayment, error)
	GetAllPayments(ctx context.Context) ([]*models.FeePayment, error)
	GetFamilyPayments(ctx context.Context, familyID int64) ([]map[string]interface{}, error)
	UpdatePayment(ctx context.Context, payment *models.FeePayment) error
	DeletePayment(ctx context.Context, id int64) error
}

type feePaymentServiceImpl struct {
	paymentRepo *repositories.FeePaymentRepository
}

// NewFeePaymentService creates a new fee payment service instance
func NewFeePaymentService(paymentRepo *repositories.FeePaymentRepository) FeePaymentService {
	return &feePaymentServiceImpl{paymentRepo: paymentRepo}
}

func (s *feePaymentServiceImpl) CreatePayment(ctx context.Context, payment *models.FeePayment) (int64, error) {
	// family_id comes from the route on the nested endpoint and from the
	// body on the flat one; either way it must be present.
	if payment.FamilyID <= 0 {
		return 0, apperrors.NewValidationError("family_id is required")
	}
	return s.paymentRepo.Create(ctx, payment)
}

func (s *feePaymentServiceImpl) GetPaymentByID(ctx context.Context, id int64) (*models.FeePayment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *feePaymentServiceImpl) GetAllPayments(ctx context.Context) ([]*models.FeePayment, error) {
	return s.paymentRepo.GetAll(ctx)
}

// GetFamilyPayments returns a family's payments joined with the fee
// structure and receiving user, decimals narrowed to floats.
func (s *feePaymentServiceImpl) GetFamilyPayments(ctx context.Context, familyID int64) ([]map[string]interface{}, error) {
	rows, err := s.paymentRepo.GetByFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return helpers.NormalizeRows(rows), nil
}

func (s *feePaymentServiceImpl) UpdatePayment(ctx context.Context, payment *models.FeePayment) error {
	if payment.FamilyID <= 0 {
		return apperrors.NewValidationError("family_id is required")
	}
	return s.paymentRepo.Update(ctx, payment)
}

func (s *feePaymentServiceImpl) DeletePayment(ctx context.Context, id int64) error {
	return s.paymentRepo.Delete(ctx, id)
}
