package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeemchu/studentportal/internal/app/controllers"
	"github.com/adeemchu/studentportal/internal/app/services"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Registering the full table also catches route conflicts, which gin
	// reports by panicking.
	RegisterRoutes(router, controllers.NewControllers(&services.Services{}, nil))
	return router
}

func TestPing(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "pong"}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClassTimetableRouteCoexistsWithItemRoute(t *testing.T) {
	router := testRouter(t)

	// Both shapes must route; the parameterized one rejects a
	// non-numeric id before touching any service.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/timetable/not-a-number", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
