package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
	"github.com/adeemchu/studentportal/internal/pkg/logger"
)

// notFoundMessages maps each resource sentinel to its response message.
var notFoundMessages = map[error]string{
	apperrors.ErrFamilyNotFound:       "Family not found",
	apperrors.ErrStudentNotFound:      "Student not found",
	apperrors.ErrSubjectNotFound:      "Subject not found",
	apperrors.ErrClassNotFound:        "Class not found",
	apperrors.ErrTeacherNotFound:      "Teacher not found",
	apperrors.ErrTimetableNotFound:    "Timetable entry not found",
	apperrors.ErrExamNotFound:         "Exam not found",
	apperrors.ErrExamResultNotFound:   "Exam result not found",
	apperrors.ErrFeeStructureNotFound: "Fee structure not found",
	apperrors.ErrFeePaymentNotFound:   "Fee payment not found",
	apperrors.ErrAttendanceNotFound:   "Attendance record not found",
	apperrors.ErrUserNotFound:         "User not found",
}

// HandleAPIError translates service errors into HTTP responses.
func HandleAPIError(c *gin.Context, err error) {
	for sentinel, message := range notFoundMessages {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
			return
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrRecordInUse),
		errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid username or password"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
