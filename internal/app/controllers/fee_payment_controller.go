package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// FeePaymentController handles fee payment operations, including the
// family-scoped payment views.
type FeePaymentController struct {
	paymentService services.FeePaymentService
}

// NewFeePaymentController creates a new FeePaymentController
func NewFeePaymentController(paymentService services.FeePaymentService) *FeePaymentController {
	return &FeePaymentController{paymentService: paymentService}
}

// CreatePayment handles POST /api/fee-payments
func (c *FeePaymentController) CreatePayment(ctx *gin.Context) {
	var payment models.FeePayment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.paymentService.CreatePayment(ctx, &payment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"payment_id": id})
}

// CreateFamilyPayment handles POST /api/families/:family_id/payments.
// The family comes from the route, overriding any body value.
func (c *FeePaymentController) CreateFamilyPayment(ctx *gin.Context) {
	familyID, ok := parseIDParam(ctx, "family_id")
	if !ok {
		return
	}

	var payment models.FeePayment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		bindError(ctx, err)
		return
	}
	payment.FamilyID = familyID

	id, err := c.paymentService.CreatePayment(ctx, &payment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"payment_id": id})
}

// GetPayments handles GET /api/fee-payments
func (c *FeePaymentController) GetPayments(ctx *gin.Context) {
	payments, err := c.paymentService.GetAllPayments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// GetFamilyPayments handles GET /api/families/:family_id/payments
func (c *FeePaymentController) GetFamilyPayments(ctx *gin.Context) {
	familyID, ok := parseIDParam(ctx, "family_id")
	if !ok {
		return
	}

	payments, err := c.paymentService.GetFamilyPayments(ctx, familyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// GetPayment handles GET /api/fee-payments/:payment_id
func (c *FeePaymentController) GetPayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "payment_id")
	if !ok {
		return
	}

	payment, err := c.paymentService.GetPaymentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// UpdatePayment handles PUT /api/fee-payments/:payment_id
func (c *FeePaymentController) UpdatePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "payment_id")
	if !ok {
		return
	}

	var payment models.FeePayment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		bindError(ctx, err)
		return
	}
	payment.PaymentID = id

	if err := c.paymentService.UpdatePayment(ctx, &payment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fee payment updated successfully"))
}

// DeletePayment handles DELETE /api/fee-payments/:payment_id
func (c *FeePaymentController) DeletePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "payment_id")
	if !ok {
		return
	}

	if err := c.paymentService.DeletePayment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fee payment deleted successfully"))
}
