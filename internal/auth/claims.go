package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"hirehub/internal/models"
)

// Claims is the JWT payload shared by token issuance and the auth
// middleware. Subject carries the user ID; Role gates admin/employer routes.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}
