package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	jwtService := NewJWTService("test-secret", "1h")

	tokenString, expiresAt, err := jwtService.GenerateAccessToken("user-1", "hr@example.com", RoleHR)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	// The token must verify against the same authority the router's
	// middleware uses.
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	email, _ := token.Get("email")
	role, _ := token.Get("role")
	tokenType, _ := token.Get("type")
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "hr@example.com", email)
	assert.Equal(t, "hr", role)
	assert.Equal(t, "access", tokenType)
	assert.Equal(t, time.Unix(expiresAt, 0).UTC(), token.Expiration().UTC())
}

func TestGenerateAccessTokenInvalidExpiration(t *testing.T) {
	jwtService := NewJWTService("test-secret", "soon")

	_, _, err := jwtService.GenerateAccessToken("user-1", "hr@example.com", RoleHR)
	assert.Error(t, err)
}
