package services

import (
	"github.com/adeemchu/studentportal/internal/app/repositories"
	"github.com/adeemchu/studentportal/internal/pkg/auth"
)

// Services bundles every service for dependency construction.
type Services struct {
	FamilyService       FamilyService
	StudentService      StudentService
	SubjectService      SubjectService
	ClassService        ClassService
	TeacherService      TeacherService
	TimetableService    TimetableService
	ExamService         ExamService
	ExamResultService   ExamResultService
	FeeStructureService FeeStructureService
	FeePaymentService   FeePaymentService
	AttendanceService   AttendanceService
	UserService         UserService
	AuthService         AuthService
}

// NewServices creates all services on top of the shared repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		FamilyService:       NewFamilyService(repos.FamilyRepository),
		StudentService:      NewStudentService(repos.StudentRepository),
		SubjectService:      NewSubjectService(repos.SubjectRepository),
		ClassService:        NewClassService(repos.ClassRepository),
		TeacherService:      NewTeacherService(repos.TeacherRepository),
		TimetableService:    NewTimetableService(repos.TimetableRepository),
		ExamService:         NewExamService(repos.ExamRepository),
		ExamResultService:   NewExamResultService(repos.ExamResultRepository),
		FeeStructureService: NewFeeStructureService(repos.FeeStructureRepository),
		FeePaymentService:   NewFeePaymentService(repos.FeePaymentRepository),
		AttendanceService:   NewAttendanceService(repos.AttendanceRepository),
		UserService:         NewUserService(repos.UserRepository),
		AuthService:         NewAuthService(repos.UserRepository, jwtService),
	}
}
