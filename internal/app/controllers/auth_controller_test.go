package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeemchu/studentportal/internal/app/models/dto"
	"github.com/adeemchu/studentportal/internal/pkg/apperrors"
)

type stubAuthService struct{}

func (s *stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != "admin" || req.Password != "admin123" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: "signed-token",
			TokenType:   "bearer",
			ExpiresIn:   43200,
		},
		UserID:   1,
		Username: "admin",
		FullName: "System Administrator",
		Role:     "admin",
	}, nil
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAuthController(&stubAuthService{})
	router := gin.New()
	router.POST("/api/auth/login", ctrl.Login)
	return router
}

func TestLoginSuccess(t *testing.T) {
	router := authTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"username": "admin", "password": "admin123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"signed-token"`)
	assert.Contains(t, w.Body.String(), `"full_name":"System Administrator"`)
}

func TestLoginWrongPassword(t *testing.T) {
	router := authTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"username": "admin", "password": "nope"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid username or password"}`, w.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	router := authTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", `{"username": "admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
