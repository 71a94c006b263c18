package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mahin-rahman/greenbasket/internal/models"
)

// TokenManager issues and validates session tokens. Tokens are stateless
// bearer credentials: expiry is the only revocation mechanism.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager creates a new TokenManager with the single canonical
// token TTL used by every issuing flow.
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Expiry exposes the configured TTL.
func (tm *TokenManager) Expiry() time.Duration {
	return tm.expiry
}

// Generate signs a session token carrying the user's uuid, display name
// and email. The password hash never enters the payload.
func (tm *TokenManager) Generate(user *models.User) (string, error) {
	now := time.Now()

	claims := &models.TokenClaims{
		UUID:  user.UUID,
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies a token string and returns its claims.
func (tm *TokenManager) Validate(tokenString string) (*models.TokenClaims, error) {
	claims := &models.TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, models.ErrUnauthorized
	}

	if claims.UUID == "" {
		return nil, fmt.Errorf("invalid token: missing subject uuid")
	}

	return claims, nil
}
