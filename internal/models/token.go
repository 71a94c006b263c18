package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the session token payload. The token is stateless: expiry
// is enforced at verification time, there is no revocation list.
type TokenClaims struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
