package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrInvalidReference is returned when an insert or update points a
	// foreign key at a row that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrRecordInUse is returned when a delete would orphan rows that still
	// reference the record.
	ErrRecordInUse = errors.New("record is referenced by other records")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Resource errors, one per entity so callers can report the entity name.
var (
	ErrFamilyNotFound       = errors.New("family not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrClassNotFound        = errors.New("class not found")
	ErrTeacherNotFound      = errors.New("teacher not found")
	ErrTimetableNotFound    = errors.New("timetable entry not found")
	ErrExamNotFound         = errors.New("exam not found")
	ErrExamResultNotFound   = errors.New("exam result not found")
	ErrFeeStructureNotFound = errors.New("fee structure not found")
	ErrFeePaymentNotFound   = errors.New("fee payment not found")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a CustomError wrapping ErrValidationFailed.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewBadRequestError creates a CustomError wrapping ErrBadRequest.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
