package auth_test

import (
	"strings"
	"testing"

	"github.com/mahin-rahman/greenbasket/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("super-secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotEqual(t, "super-secret", hash)

	assert.NoError(t, auth.ComparePassword(hash, "super-secret"))
	assert.Error(t, auth.ComparePassword(hash, "wrong-secret"))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := auth.HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := auth.HashPassword("same-input")
	require.NoError(t, err)
	second, err := auth.HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, auth.ComparePassword(first, "same-input"))
	assert.NoError(t, auth.ComparePassword(second, "same-input"))
}
