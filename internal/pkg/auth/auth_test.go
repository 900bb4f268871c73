package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, CheckPassword(hash, "admin123"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}

func TestGenerateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: 12 * time.Hour,
		TokenIssuer: "studentportal",
	})

	token, expiresIn, err := svc.GenerateToken(7, "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, int((12 * time.Hour).Seconds()), expiresIn)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "studentportal", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateTokenUniqueIDs(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "s", TokenExpiry: time.Hour})

	first, _, err := svc.GenerateToken(1, "a", "admin")
	require.NoError(t, err)
	second, _, err := svc.GenerateToken(1, "a", "admin")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
