package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carry the resolved actor: role plus the role-specific id the
// core authorizes against (user id for customers/admins, restaurant id
// for owners, driver id for drivers).
type Claims struct {
	UserID  uint   `json:"userId"`
	ActorID uint   `json:"actorId"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(userID, actorID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:  userID,
		ActorID: actorID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
