package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// CreateTeacher handles POST /api/teachers
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var teacher models.Teacher
	if err := ctx.ShouldBindJSON(&teacher); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.teacherService.CreateTeacher(ctx, &teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"teacher_id": id})
}

// GetTeachers handles GET /api/teachers
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// GetTeacher handles GET /api/teachers/:teacher_id
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "teacher_id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// UpdateTeacher handles PUT /api/teachers/:teacher_id
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "teacher_id")
	if !ok {
		return
	}

	var teacher models.Teacher
	if err := ctx.ShouldBindJSON(&teacher); err != nil {
		bindError(ctx, err)
		return
	}
	teacher.TeacherID = id

	if err := c.teacherService.UpdateTeacher(ctx, &teacher); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Teacher updated successfully"))
}

// DeleteTeacher handles DELETE /api/teachers/:teacher_id
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "teacher_id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Teacher deleted successfully"))
}
