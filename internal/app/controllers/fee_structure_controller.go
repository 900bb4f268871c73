package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// FeeStructureController handles fee structure operations
type FeeStructureController struct {
	feeService services.FeeStructureService
}

// NewFeeStructureController creates a new FeeStructureController
func NewFeeStructureController(feeService services.FeeStructureService) *FeeStructureController {
	return &FeeStructureController{feeService: feeService}
}

// CreateFeeStructure handles POST /api/fee-structure
func (c *FeeStructureController) CreateFeeStructure(ctx *gin.Context) {
	var fee models.FeeStructure
	if err := ctx.ShouldBindJSON(&fee); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.feeService.CreateFeeStructure(ctx, &fee)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"fee_id": id})
}

// GetFeeStructures handles GET /api/fee-structure
func (c *FeeStructureController) GetFeeStructures(ctx *gin.Context) {
	fees, err := c.feeService.GetAllFeeStructures(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fees)
}

// GetFeeStructure handles GET /api/fee-structure/:fee_id
func (c *FeeStructureController) GetFeeStructure(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "fee_id")
	if !ok {
		return
	}

	fee, err := c.feeService.GetFeeStructureByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, fee)
}

// UpdateFeeStructure handles PUT /api/fee-structure/:fee_id
func (c *FeeStructureController) UpdateFeeStructure(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "fee_id")
	if !ok {
		return
	}

	var fee models.FeeStructure
	if err := ctx.ShouldBindJSON(&fee); err != nil {
		bindError(ctx, err)
		return
	}
	fee.FeeID = id

	if err := c.feeService.UpdateFeeStructure(ctx, &fee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fee structure updated successfully"))
}

// DeleteFeeStructure handles DELETE /api/fee-structure/:fee_id
func (c *FeeStructureController) DeleteFeeStructure(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "fee_id")
	if !ok {
		return
	}

	if err := c.feeService.DeleteFeeStructure(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fee structure deleted successfully"))
}
