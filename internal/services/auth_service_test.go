package services

import (
	"context"
	"testing"
	"time"

	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/models"
	pkgauth "github.com/mahin-rahman/greenbasket/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("a-sufficiently-long-secret", time.Hour)
}

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()

	hash, err := pkgauth.HashPassword(password)
	require.NoError(t, err)

	access := `{"portfolio":true}`
	return &models.User{
		UUID:         "V1StGXR8_Z5jdHi6B-myT",
		Name:         "Mahin Rahman",
		Email:        "mahin@example.com",
		PasswordHash: hash,
		Type:         models.UserTypeAdmin,
		Status:       true,
		CanAccess:    &access,
		Provider:     models.ProviderLocal,
	}
}

func TestSignIn_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewAuthService(repo, newTestTokenManager(), newTestLogger(), newTestAuditLogger())

	resp, err := svc.SignIn(context.Background(), "nobody@example.com", "pw")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSignIn_DisabledAccount(t *testing.T) {
	user := activeUser(t, "correct-horse")
	user.Status = false

	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, newTestTokenManager(), newTestLogger(), newTestAuditLogger())

	resp, err := svc.SignIn(context.Background(), user.Email, "correct-horse")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrAccountDisabled)
}

func TestSignIn_WrongPassword(t *testing.T) {
	user := activeUser(t, "correct-horse")

	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return user, nil
		},
	}
	svc := NewAuthService(repo, newTestTokenManager(), newTestLogger(), newTestAuditLogger())

	resp, err := svc.SignIn(context.Background(), user.Email, "battery-staple")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestSignIn_Success(t *testing.T) {
	user := activeUser(t, "correct-horse")

	var lookedUp string
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			lookedUp = email
			return user, nil
		},
	}
	tm := newTestTokenManager()
	svc := NewAuthService(repo, tm, newTestLogger(), newTestAuditLogger())

	resp, err := svc.SignIn(context.Background(), "  Mahin@Example.com ", "correct-horse")
	require.NoError(t, err)

	// Lookup email is normalized
	assert.Equal(t, "mahin@example.com", lookedUp)

	claims, err := tm.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.UUID, claims.UUID)
	assert.Equal(t, user.Email, claims.Email)

	require.NotNil(t, resp.User)
	assert.Equal(t, user.UUID, resp.User.UUID)
	assert.Equal(t, user.Name, resp.User.Name)
	require.NotNil(t, resp.CanAccess)
	assert.Equal(t, *user.CanAccess, *resp.CanAccess)
}

func TestRegister_HashesWithFreshSalt(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewAuthService(repo, newTestTokenManager(), newTestLogger(), newTestAuditLogger())

	first := &models.User{Name: "A", Email: "a@example.com"}
	second := &models.User{Name: "B", Email: "b@example.com"}

	require.NoError(t, svc.Register(context.Background(), first, "same-password"))
	require.NoError(t, svc.Register(context.Background(), second, "same-password"))

	assert.NotEqual(t, "same-password", first.PasswordHash)
	assert.NoError(t, pkgauth.ComparePassword(first.PasswordHash, "same-password"))

	// Same plaintext, different stored hashes
	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)

	assert.Equal(t, models.ProviderLocal, first.Provider)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			return models.ErrConflict
		},
	}
	svc := NewAuthService(repo, newTestTokenManager(), newTestLogger(), newTestAuditLogger())

	err := svc.Register(context.Background(), &models.User{Name: "A", Email: "a@example.com"}, "pw-123456")

	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestChangePassword_StoresNewHash(t *testing.T) {
	var gotUUID, gotHash string
	repo := &mockUserRepo{
		updatePasswordFn: func(ctx context.Context, uuid, passwordHash string) error {
			gotUUID = uuid
			gotHash = passwordHash
			return nil
		},
	}
	svc := NewAuthService(repo, newTestTokenManager(), newTestLogger(), newTestAuditLogger())

	err := svc.ChangePassword(context.Background(), "V1StGXR8_Z5jdHi6B-myT", "new-password")
	require.NoError(t, err)

	assert.Equal(t, "V1StGXR8_Z5jdHi6B-myT", gotUUID)
	assert.NotEqual(t, "new-password", gotHash)
	assert.NoError(t, pkgauth.ComparePassword(gotHash, "new-password"))
}

func TestChangePassword_UnknownUser(t *testing.T) {
	repo := &mockUserRepo{
		updatePasswordFn: func(ctx context.Context, uuid, passwordHash string) error {
			return models.ErrNotFound
		},
	}
	svc := NewAuthService(repo, newTestTokenManager(), newTestLogger(), newTestAuditLogger())

	err := svc.ChangePassword(context.Background(), "missing-uuid", "new-password")

	assert.ErrorIs(t, err, models.ErrNotFound)
}
