package auth_test

import (
	"testing"
	"time"

	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		UUID:  "V1StGXR8_Z5jdHi6B-myT",
		Name:  "Test User",
		Email: "user@example.com",
	}
}

func TestGenerate_RoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("a-sufficiently-long-secret", 24*time.Hour)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "V1StGXR8_Z5jdHi6B-myT", claims.UUID)
	assert.Equal(t, "Test User", claims.Name)
	assert.Equal(t, "user@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidate_Expired(t *testing.T) {
	tm := auth.NewTokenManager("a-sufficiently-long-secret", -time.Minute)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestValidate_WrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("a-sufficiently-long-secret", time.Hour)
	other := auth.NewTokenManager("a-different-long-secret!", time.Hour)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	tm := auth.NewTokenManager("a-sufficiently-long-secret", time.Hour)

	_, err := tm.Validate("not-a-token")
	assert.Error(t, err)
}
