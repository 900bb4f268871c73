package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/app/services"
	"github.com/adeemchu/studentportal/internal/pkg/auth"
)

// Controllers bundles every controller for route registration.
type Controllers struct {
	FamilyController       *FamilyController
	StudentController      *StudentController
	SubjectController      *SubjectController
	ClassController        *ClassController
	TeacherController      *TeacherController
	TimetableController    *TimetableController
	ExamController         *ExamController
	ExamResultController   *ExamResultController
	FeeStructureController *FeeStructureController
	FeePaymentController   *FeePaymentController
	AttendanceController   *AttendanceController
	UserController         *UserController
	AuthController         *AuthController
}

// NewControllers creates all controllers on top of the shared services.
func NewControllers(svcs *services.Services, jwtService *auth.JWTService) *Controllers {
	return &Controllers{
		FamilyController:       NewFamilyController(svcs.FamilyService),
		StudentController:      NewStudentController(svcs.StudentService, svcs.ExamResultService, svcs.AttendanceService),
		SubjectController:      NewSubjectController(svcs.SubjectService),
		ClassController:        NewClassController(svcs.ClassService),
		TeacherController:      NewTeacherController(svcs.TeacherService),
		TimetableController:    NewTimetableController(svcs.TimetableService),
		ExamController:         NewExamController(svcs.ExamService),
		ExamResultController:   NewExamResultController(svcs.ExamResultService),
		FeeStructureController: NewFeeStructureController(svcs.FeeStructureService),
		FeePaymentController:   NewFeePaymentController(svcs.FeePaymentService),
		AttendanceController:   NewAttendanceController(svcs.AttendanceService),
		UserController:         NewUserController(svcs.UserService),
		AuthController:         NewAuthController(svcs.AuthService),
	}
}

// parseIDParam reads a numeric path parameter, responding with 400 when
// it is not a valid integer. The second return value reports success.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// bindError responds with 400 carrying the binding failure detail.
func bindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
}
