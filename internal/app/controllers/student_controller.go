package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/middleware"
)

// StudentController handles student-related operations, including the
// per-student result and attendance views.
type StudentController struct {
	studentService    services.StudentService
	resultService     services.ExamResultService
	attendanceService services.AttendanceService
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	resultService services.ExamResultService,
	attendanceService services.AttendanceService,
) *StudentController {
	return &StudentController{
		studentService:    studentService,
		resultService:     resultService,
		attendanceService: attendanceService,
	}
}

// CreateStudent handles POST /api/students
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		bindError(ctx, err)
		return
	}

	id, err := c.studentService.CreateStudent(ctx, &student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"student_id": id})
}

// GetStudents handles GET /api/students
func (c *StudentController) GetStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudent handles GET /api/students/:student_id
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent handles PUT /api/students/:student_id
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		bindError(ctx, err)
		return
	}
	student.StudentID = id

	if err := c.studentService.UpdateStudent(ctx, &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student updated successfully"))
}

// DeleteStudent handles DELETE /api/students/:student_id
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student deleted successfully"))
}

// GetStudentResults handles GET /api/students/:student_id/results
func (c *StudentController) GetStudentResults(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	results, err := c.resultService.GetStudentResults(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// GetStudentAttendance handles GET /api/students/:student_id/attendance
func (c *StudentController) GetStudentAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "student_id")
	if !ok {
		return
	}

	records, err := c.attendanceService.GetStudentAttendance(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}
