package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	session := Session{UserID: uuid.New(), Role: RoleAdmin, EmailVerified: true, KYCStatus: "APPROVED"}

	token, err := jwtService.GenerateJWT(session, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, session, claims.Session)
	assert.True(t, claims.IsAdmin())
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	userID := uuid.New()

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Session{UserID: userID, Role: "USER"}, time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Garbage",
			setup:       func() string { return "invalid.token.string" },
			expectError: true,
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Session{UserID: userID}, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(Session{UserID: userID}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing user",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Session{Role: RoleAdmin}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					Session: Session{UserID: userID},
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "another-service",
					},
				})
				signed, _ := token.SignedString([]byte(testSecret))
				return signed
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
			}
		})
	}
}
