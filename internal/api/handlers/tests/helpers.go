package routes_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"hirehub/internal/auth"
	"hirehub/internal/models"
)

const testJWTSecret = "route-test-secret"

func generateTestToken(userID uuid.UUID, role models.Role, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &auth.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// bearerToken signs a short-lived token for the given identity and returns a
// ready-to-use Authorization header value.
func bearerToken(t *testing.T, userID uuid.UUID, role models.Role) string {
	t.Helper()
	token, err := generateTestToken(userID, role, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}
