package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// ClassController handles class-related operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// CreateClass handles POST /api/classes
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var class models.Class
	if err := ctx.ShouldBindJSON(&class); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.classService.CreateClass(ctx, &class)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"class_id": id})
}

// GetClasses handles GET /api/classes
func (c *ClassController) GetClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classes)
}

// GetClass handles GET /api/classes/:class_id
func (c *ClassController) GetClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "class_id")
	if !ok {
		return
	}

	class, err := c.classService.GetClassByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, class)
}

// UpdateClass handles PUT /api/classes/:class_id
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "class_id")
	if !ok {
		return
	}

	var class models.Class
	if err := ctx.ShouldBindJSON(&class); err != nil {
		bindError(ctx, err)
		return
	}
	class.ClassID = id

	if err := c.classService.UpdateClass(ctx, &class); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Class updated successfully"))
}

// DeleteClass handles DELETE /api/classes/:class_id
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "class_id")
	if !ok {
		return
	}

	if err := c.classService.DeleteClass(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Class deleted successfully"))
}
