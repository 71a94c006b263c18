package nanoid

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	IDLength = 21 // matches the char(21) uuid columns
)

// New returns a 21-character URL-safe random identifier. Identifiers are
// generated by the service at create time, never by the database.
func New() (string, error) {
	bytes := make([]byte, IDLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}

	id := make([]byte, IDLength)
	for i, b := range bytes {
		// 64-symbol alphabet, so masking the low 6 bits keeps the
		// distribution uniform
		id[i] = alphabet[b&63]
	}

	return string(id), nil
}

// MustNew is New but panics on entropy failure. Only for tests and fixtures.
func MustNew() string {
	id, err := New()
	if err != nil {
		panic(err)
	}
	return id
}

// Valid reports whether s looks like an identifier produced by New.
func Valid(s string) bool {
	if len(s) != IDLength {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
