package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/controllers"
)

// RegisterRoutes wires every endpoint onto the engine. All resource
// endpoints live under /api; the health check sits at the root.
func RegisterRoutes(router *gin.Engine, ctrl *controllers.Controllers) {
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrl.AuthController.Login)
	}

	families := api.Group("/families")
	{
		families.POST("", ctrl.FamilyController.CreateFamily)
		families.GET("", ctrl.FamilyController.GetFamilies)
		families.GET("/:family_id", ctrl.FamilyController.GetFamily)
		families.PUT("/:family_id", ctrl.FamilyController.UpdateFamily)
		families.DELETE("/:family_id", ctrl.FamilyController.DeleteFamily)
		families.GET("/:family_id/payments", ctrl.FeePaymentController.GetFamilyPayments)
		families.POST("/:family_id/payments", ctrl.FeePaymentController.CreateFamilyPayment)
	}

	students := api.Group("/students")
	{
		students.POST("", ctrl.StudentController.CreateStudent)
		students.GET("", ctrl.StudentController.GetStudents)
		students.GET("/:student_id", ctrl.StudentController.GetStudent)
		students.PUT("/:student_id", ctrl.StudentController.UpdateStudent)
		students.DELETE("/:student_id", ctrl.StudentController.DeleteStudent)
		students.GET("/:student_id/results", ctrl.StudentController.GetStudentResults)
		students.GET("/:student_id/attendance", ctrl.StudentController.GetStudentAttendance)
	}

	subjects := api.Group("/subjects")
	{
		subjects.POST("", ctrl.SubjectController.CreateSubject)
		subjects.GET("", ctrl.SubjectController.GetSubjects)
		subjects.GET("/:subject_id", ctrl.SubjectController.GetSubject)
		subjects.PUT("/:subject_id", ctrl.SubjectController.UpdateSubject)
		subjects.DELETE("/:subject_id", ctrl.SubjectController.DeleteSubject)
	}

	classes := api.Group("/classes")
	{
		classes.POST("", ctrl.ClassController.CreateClass)
		classes.GET("", ctrl.ClassController.GetClasses)
		classes.GET("/:class_id", ctrl.ClassController.GetClass)
		classes.PUT("/:class_id", ctrl.ClassController.UpdateClass)
		classes.DELETE("/:class_id", ctrl.ClassController.DeleteClass)
	}

	teachers := api.Group("/teachers")
	{
		teachers.POST("", ctrl.TeacherController.CreateTeacher)
		teachers.GET("", ctrl.TeacherController.GetTeachers)
		teachers.GET("/:teacher_id", ctrl.TeacherController.GetTeacher)
		teachers.PUT("/:teacher_id", ctrl.TeacherController.UpdateTeacher)
		teachers.DELETE("/:teacher_id", ctrl.TeacherController.DeleteTeacher)
	}

	timetable := api.Group("/timetable")
	{
		timetable.POST("", ctrl.TimetableController.CreateEntry)
		timetable.GET("", ctrl.TimetableController.GetEntries)
		timetable.GET("/class/:class_name", ctrl.TimetableController.GetClassTimetable)
		timetable.GET("/:timetable_id", ctrl.TimetableController.GetEntry)
		timetable.PUT("/:timetable_id", ctrl.TimetableController.UpdateEntry)
		timetable.DELETE("/:timetable_id", ctrl.TimetableController.DeleteEntry)
	}

	exams := api.Group("/exams")
	{
		exams.POST("", ctrl.ExamController.CreateExam)
		exams.GET("", ctrl.ExamController.GetExams)
		exams.GET("/:exam_id", ctrl.ExamController.GetExam)
		exams.PUT("/:exam_id", ctrl.ExamController.UpdateExam)
		exams.DELETE("/:exam_id", ctrl.ExamController.DeleteExam)
	}

	results := api.Group("/exam-results")
	{
		results.POST("", ctrl.ExamResultController.CreateResult)
		results.GET("", ctrl.ExamResultController.GetResults)
		results.GET("/:result_id", ctrl.ExamResultController.GetResult)
		results.PUT("/:result_id", ctrl.ExamResultController.UpdateResult)
		results.DELETE("/:result_id", ctrl.ExamResultController.DeleteResult)
	}

	feeStructure := api.Group("/fee-structure")
	{
		feeStructure.POST("", ctrl.FeeStructureController.CreateFeeStructure)
		feeStructure.GET("", ctrl.FeeStructureController.GetFeeStructures)
		feeStructure.GET("/:fee_id", ctrl.FeeStructureController.GetFeeStructure)
		feeStructure.PUT("/:fee_id", ctrl.FeeStructureController.UpdateFeeStructure)
		feeStructure.DELETE("/:fee_id", ctrl.FeeStructureController.DeleteFeeStructure)
	}

	feePayments := api.Group("/fee-payments")
	{
		feePayments.POST("", ctrl.FeePaymentController.CreatePayment)
		feePayments.GET("", ctrl.FeePaymentController.GetPayments)
		feePayments.GET("/:payment_id", ctrl.FeePaymentController.GetPayment)
		feePayments.PUT("/:payment_id", ctrl.FeePaymentController.UpdatePayment)
		feePayments.DELETE("/:payment_id", ctrl.FeePaymentController.DeletePayment)
	}

	attendance := api.Group("/attendance")
	{
		attendance.POST("", ctrl.AttendanceController.CreateAttendance)
		attendance.GET("", ctrl.AttendanceController.GetAttendance)
		attendance.GET("/:attendance_id", ctrl.AttendanceController.GetAttendanceByID)
		attendance.PUT("/:attendance_id", ctrl.AttendanceController.UpdateAttendance)
		attendance.DELETE("/:attendance_id", ctrl.AttendanceController.DeleteAttendance)
	}

	users := api.Group("/users")
	{
		users.POST("", ctrl.UserController.CreateUser)
		users.GET("", ctrl.UserController.GetUsers)
		users.GET("/:user_id", ctrl.UserController.GetUser)
		users.PUT("/:user_id", ctrl.UserController.UpdateUser)
		users.DELETE("/:user_id", ctrl.UserController.DeleteUser)
	}
}
