package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// ExamController handles exam-related operations
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreateExam handles POST /api/exams
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var exam models.Exam
	if err := ctx.ShouldBindJSON(&exam); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.examService.CreateExam(ctx, &exam)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"exam_id": id})
}

// GetExams handles GET /api/exams
func (c *ExamController) GetExams(ctx *gin.Context) {
	exams, err := c.examService.GetAllExams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exams)
}

// GetExam handles GET /api/exams/:exam_id
func (c *ExamController) GetExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	exam, err := c.examService.GetExamByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, exam)
}

// UpdateExam handles PUT /api/exams/:exam_id
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	var exam models.Exam
	if err := ctx.ShouldBindJSON(&exam); err != nil {
		bindError(ctx, err)
		return
	}
	exam.ExamID = id

	if err := c.examService.UpdateExam(ctx, &exam); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Exam updated successfully"))
}

// DeleteExam handles DELETE /api/exams/:exam_id
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}

	if err := c.examService.DeleteExam(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Exam deleted successfully"))
}
