package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository for dependency construction.
type Repositories struct {
	FamilyRepository       *FamilyRepository
	StudentRepository      *StudentRepository
	SubjectRepository      *SubjectRepository
	ClassRepository        *ClassRepository
	TeacherRepository      *TeacherRepository
	TimetableRepository    *TimetableRepository
	ExamRepository         *ExamRepository
	ExamResultRepository   *ExamResultRepository
	FeeStructureRepository *FeeStructureRepository
	FeePaymentRepository   *FeePaymentRepository
	AttendanceRepository   *AttendanceRepository
	UserRepository         *UserRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FamilyRepository:       NewFamilyRepository(db),
		StudentRepository:      NewStudentRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		ClassRepository:        NewClassRepository(db),
		TeacherRepository:      NewTeacherRepository(db),
		TimetableRepository:    NewTimetableRepository(db),
		ExamRepository:         NewExamRepository(db),
		ExamResultRepository:   NewExamResultRepository(db),
		FeeStructureRepository: NewFeeStructureRepository(db),
		FeePaymentRepository:   NewFeePaymentRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		UserRepository:         NewUserRepository(db),
	}
}

// statementBuilder returns a squirrel builder with PostgreSQL placeholders.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
