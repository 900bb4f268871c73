package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// SubjectController handles subject-related operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateSubject handles POST /api/subjects
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var subject models.Subject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.subjectService.CreateSubject(ctx, &subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"subject_id": id})
}

// GetSubjects handles GET /api/subjects
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAllSubjects(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// GetSubject handles GET /api/subjects/:subject_id
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "subject_id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubjectByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// UpdateSubject handles PUT /api/subjects/:subject_id
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "subject_id")
	if !ok {
		return
	}

	var subject models.Subject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		bindError(ctx, err)
		return
	}
	subject.SubjectID = id

	if err := c.subjectService.UpdateSubject(ctx, &subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Subject updated successfully"))
}

// DeleteSubject handles DELETE /api/subjects/:subject_id
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "subject_id")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Subject deleted successfully"))
}
