package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeemchu/studentportal/internal/app/models"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
)

type stubFamilyService struct {
	families map[int64]*models.Family
	nextID   int64
}

func newStubFamilyService() *stubFamilyService {
	return &stubFamilyService{families: map[int64]*models.Family{}, nextID: 1}
}

func (s *stubFamilyService) CreateFamily(_ context.Context, family *models.Family) (int64, error) {
	id := s.nextID
	s.nextID++
	family.FamilyID = id
	s.families[id] = family
	return id, nil
}

func (s *stubFamilyService) GetFamilyByID(_ context.Context, id int64) (*models.Family, error) {
	family, ok := s.families[id]
	if !ok {
		return nil, apperrors.ErrFamilyNotFound
	}
	return family, nil
}

func (s *stubFamilyService) GetAllFamilies(_ context.Context) ([]*models.Family, error) {
	out := []*models.Family{}
	for _, f := range s.families {
		out = append(out, f)
	}
	return out, nil
}

func (s *stubFamilyService) UpdateFamily(_ context.Context, family *models.Family) error {
	if _, ok := s.families[family.FamilyID]; !ok {
		return apperrors.ErrFamilyNotFound
	}
	s.families[family.FamilyID] = family
	return nil
}

func (s *stubFamilyService) DeleteFamily(_ context.Context, id int64) error {
	if _, ok := s.families[id]; !ok {
		return apperrors.ErrFamilyNotFound
	}
	delete(s.families, id)
	return nil
}

func familyTestRouter(svc *stubFamilyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewFamilyController(svc)
	router := gin.New()
	router.POST("/api/families", ctrl.CreateFamily)
	router.GET("/api/families", ctrl.GetFamilies)
	router.GET("/api/families/:family_id", ctrl.GetFamily)
	router.PUT("/api/families/:family_id", ctrl.UpdateFamily)
	router.DELETE("/api/families/:family_id", ctrl.DeleteFamily)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateFamilyReturnsID(t *testing.T) {
	router := familyTestRouter(newStubFamilyService())

	w := doJSON(t, router, http.MethodPost, "/api/families",
		`{"family_name": "Ahmed Family", "address": "House 12, Street 5", "contact_number": "0300-1234567"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"family_id": 1}`, w.Body.String())
}

func TestCreateFamilyMissingName(t *testing.T) {
	router := familyTestRouter(newStubFamilyService())

	w := doJSON(t, router, http.MethodPost, "/api/families", `{"address": "nowhere"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetFamilyRoundTrip(t *testing.T) {
	svc := newStubFamilyService()
	router := familyTestRouter(svc)

	doJSON(t, router, http.MethodPost, "/api/families", `{"family_name": "Khan Family"}`)

	w := doJSON(t, router, http.MethodGet, "/api/families/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"family_name":"Khan Family"`)
	assert.Contains(t, w.Body.String(), `"family_id":1`)
}

func TestGetFamilyNotFound(t *testing.T) {
	router := familyTestRouter(newStubFamilyService())

	w := doJSON(t, router, http.MethodGet, "/api/families/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Family not found"}`, w.Body.String())
}

func TestGetFamilyInvalidID(t *testing.T) {
	router := familyTestRouter(newStubFamilyService())

	w := doJSON(t, router, http.MethodGet, "/api/families/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateFamily(t *testing.T) {
	svc := newStubFamilyService()
	router := familyTestRouter(svc)

	doJSON(t, router, http.MethodPost, "/api/families", `{"family_name": "Old Name"}`)

	w := doJSON(t, router, http.MethodPut, "/api/families/1", `{"family_name": "New Name"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Family updated successfully"}`, w.Body.String())
	assert.Equal(t, "New Name", svc.families[1].FamilyName)
}

func TestUpdateFamilyNotFound(t *testing.T) {
	router := familyTestRouter(newStubFamilyService())

	w := doJSON(t, router, http.MethodPut, "/api/families/7", `{"family_name": "Nobody"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteFamily(t *testing.T) {
	svc := newStubFamilyService()
	router := familyTestRouter(svc)

	doJSON(t, router, http.MethodPost, "/api/families", `{"family_name": "To Remove"}`)

	w := doJSON(t, router, http.MethodDelete, "/api/families/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Family deleted successfully"}`, w.Body.String())

	// second delete reports not found
	w = doJSON(t, router, http.MethodDelete, "/api/families/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFamiliesEmpty(t *testing.T) {
	router := familyTestRouter(newStubFamilyService())

	w := doJSON(t, router, http.MethodGet, "/api/families", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
