package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/venturemate/marketplace-go/models"
)

type Claims struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}
