package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/habitmon/pkg/entity"
)

// TokenIssuer is set on every token the API signs and required when parsing
const TokenIssuer = "habitmon"

type JWTServiceI interface {
	// Returns signed token along with the moment it expires
	GenerateToken(user *entity.User) (token string, expiresAt time.Time, err error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims identifies user by ID, the subject, and by name, the key of user's profile
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
