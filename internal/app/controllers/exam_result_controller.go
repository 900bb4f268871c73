package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// ExamResultController handles exam result operations
type ExamResultController struct {
	resultService services.ExamResultService
}

// NewExamResultController creates a new ExamResultController
func NewExamResultController(resultService services.ExamResultService) *ExamResultController {
	return &ExamResultController{resultService: resultService}
}

// CreateResult handles POST /api/exam-results
func (c *ExamResultController) CreateResult(ctx *gin.Context) {
	var result models.ExamResult
	if err := ctx.ShouldBindJSON(&result); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.resultService.CreateResult(ctx, &result)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"result_id": id})
}

// GetResults handles GET /api/exam-results
func (c *ExamResultController) GetResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllResults(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// GetResult handles GET /api/exam-results/:result_id
func (c *ExamResultController) GetResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "result_id")
	if !ok {
		return
	}

	result, err := c.resultService.GetResultByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// UpdateResult handles PUT /api/exam-results/:result_id
func (c *ExamResultController) UpdateResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "result_id")
	if !ok {
		return
	}

	var result models.ExamResult
	if err := ctx.ShouldBindJSON(&result); err != nil {
		bindError(ctx, err)
		return
	}
	result.ResultID = id

	if err := c.resultService.UpdateResult(ctx, &result); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Exam result updated successfully"))
}

// DeleteResult handles DELETE /api/exam-results/:result_id
func (c *ExamResultController) DeleteResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "result_id")
	if !ok {
		return
	}

	if err := c.resultService.DeleteResult(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Exam result deleted successfully"))
}
