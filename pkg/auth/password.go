package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost balances hashing latency against brute-force resistance on
// the sign-in and registration paths.
const BcryptCost = 12

// HashPassword hashes a plaintext password with a fresh random salt.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword verifies a plaintext password against a stored bcrypt
// hash. The comparison is constant-time inside bcrypt.
func ComparePassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
