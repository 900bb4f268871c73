package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// FamilyController handles family-related operations
type FamilyController struct {
	familyService services.FamilyService
}

// NewFamilyController creates a new FamilyController
func NewFamilyController(familyService services.FamilyService) *FamilyController {
	return &FamilyController{familyService: familyService}
}

// CreateFamily handles POST /api/families
func (c *FamilyController) CreateFamily(ctx *gin.Context) {
	var family models.Family
	if err := ctx.ShouldBindJSON(&family); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.familyService.CreateFamily(ctx, &family)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"family_id": id})
}

// GetFamilies handles GET /api/families
func (c *FamilyController) GetFamilies(ctx *gin.Context) {
	families, err := c.familyService.GetAllFamilies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, families)
}

// GetFamily handles GET /api/families/:family_id
func (c *FamilyController) GetFamily(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "family_id")
	if !ok {
		return
	}

	family, err := c.familyService.GetFamilyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, family)
}

// UpdateFamily handles PUT /api/families/:family_id
func (c *FamilyController) UpdateFamily(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "family_id")
	if !ok {
		return
	}

	var family models.Family
	if err := ctx.ShouldBindJSON(&family); err != nil {
		bindError(ctx, err)
		return
	}
	family.FamilyID = id

	if err := c.familyService.UpdateFamily(ctx, &family); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Family updated successfully"))
}

// DeleteFamily handles DELETE /api/families/:family_id
func (c *FamilyController) DeleteFamily(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "family_id")
	if !ok {
		return
	}

	if err := c.familyService.DeleteFamily(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Family deleted successfully"))
}
