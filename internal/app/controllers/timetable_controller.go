package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// TimetableController handles timetable-related operations
type TimetableController struct {
	timetableService services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService services.TimetableService) *TimetableController {
	return &TimetableController{timetableService: timetableService}
}

// CreateEntry handles POST /api/timetable
func (c *TimetableController) CreateEntry(ctx *gin.Context) {
	var entry models.Timetable
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.timetableService.CreateEntry(ctx, &entry)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"timetable_id": id})
}

// GetEntries handles GET /api/timetable
func (c *TimetableController) GetEntries(ctx *gin.Context) {
	entries, err := c.timetableService.GetAllEntries(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// GetEntry handles GET /api/timetable/:timetable_id
func (c *TimetableController) GetEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "timetable_id")
	if !ok {
		return
	}

	entry, err := c.timetableService.GetEntryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// GetClassTimetable handles GET /api/timetable/class/:class_name
func (c *TimetableController) GetClassTimetable(ctx *gin.Context) {
	className := ctx.Param("class_name")

	entries, err := c.timetableService.GetClassTimetable(ctx, className)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// UpdateEntry handles PUT /api/timetable/:timetable_id
func (c *TimetableController) UpdateEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "timetable_id")
	if !ok {
		return
	}

	var entry models.Timetable
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		bindError(ctx, err)
		return
	}
	entry.TimetableID = id

	if err := c.timetableService.UpdateEntry(ctx, &entry); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Timetable entry updated successfully"))
}

// DeleteEntry handles DELETE /api/timetable/:timetable_id
func (c *TimetableController) DeleteEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "timetable_id")
	if !ok {
		return
	}

	if err := c.timetableService.DeleteEntry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Timetable entry deleted successfully"))
}
