package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// AttendanceController handles attendance operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// CreateAttendance handles POST /api/attendance
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var record models.Attendance
	if err := ctx.ShouldBindJSON(&record); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.attendanceService.CreateAttendance(ctx, &record)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"attendance_id": id})
}

// GetAttendance handles GET /api/attendance
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	records, err := c.attendanceService.GetAllAttendance(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// GetAttendanceByID handles GET /api/attendance/:attendance_id
func (c *AttendanceController) GetAttendanceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "attendance_id")
	if !ok {
		return
	}

	record, err := c.attendanceService.GetAttendanceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// UpdateAttendance handles PUT /api/attendance/:attendance_id
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "attendance_id")
	if !ok {
		return
	}

	var record models.Attendance
	if err := ctx.ShouldBindJSON(&record); err != nil {
		bindError(ctx, err)
		return
	}
	record.AttendanceID = id

	if err := c.attendanceService.UpdateAttendance(ctx, &record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance record updated successfully"))
}

// DeleteAttendance handles DELETE /api/attendance/:attendance_id
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "attendance_id")
	if !ok {
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance record deleted successfully"))
}
