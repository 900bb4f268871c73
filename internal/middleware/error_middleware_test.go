package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(ctx, err)
	return w
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	w := respondWith(apperrors.ErrFamilyNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Family not found"}`, w.Body.String())

	w = respondWith(apperrors.ErrAttendanceNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Attendance record not found"}`, w.Body.String())
}

func TestHandleAPIErrorValidation(t *testing.T) {
	w := respondWith(apperrors.NewValidationError("end_time must be after start_time"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "end_time must be after start_time"}`, w.Body.String())
}

func TestHandleAPIErrorInvalidReference(t *testing.T) {
	w := respondWith(apperrors.ErrInvalidReference)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAPIErrorRecordInUse(t *testing.T) {
	w := respondWith(apperrors.ErrRecordInUse)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleAPIErrorDuplicateUsername(t *testing.T) {
	w := respondWith(apperrors.ErrUsernameAlreadyExists)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error": "username already exists"}`, w.Body.String())
}

func TestHandleAPIErrorInvalidCredentials(t *testing.T) {
	w := respondWith(apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid username or password"}`, w.Body.String())
}

func TestHandleAPIErrorInternal(t *testing.T) {
	w := respondWith(errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
}

func TestHandleAPIErrorWrapped(t *testing.T) {
	wrapped := &apperrors.CustomError{Err: apperrors.ErrStudentNotFound, Message: "student 42 missing"}
	w := respondWith(wrapped)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Student not found"}`, w.Body.String())
}
