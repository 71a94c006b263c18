package integration

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/repositories"
	"github.com/mahin-rahman/greenbasket/internal/services"
	pkglogger "github.com/mahin-rahman/greenbasket/pkg/logger"
)

func newAuthService(t *testing.T) (*services.AuthService, *auth.TokenManager, *repositories.UserRepository) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tm := auth.NewTokenManager("integration-test-secret-key", time.Hour)
	repo := repositories.NewUserRepository(testDB.DB)
	svc := services.NewAuthService(repo, tm, logger, pkglogger.NewAuditLogger(logger))
	return svc, tm, repo
}

func TestSignIn_EndToEnd(t *testing.T) {
	cleanup(t)
	ctx := context.Background()
	svc, tm, repo := newAuthService(t)

	seeded, err := SeedUser(ctx, testDB.DB, "Amina Khatun", "amina@example.com", "correct-horse-battery")
	require.NoError(t, err)

	resp, err := svc.SignIn(ctx, "Amina@Example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, seeded.UUID, resp.User.UUID)

	claims, err := tm.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "amina@example.com", claims.Email)

	_, err = svc.SignIn(ctx, "amina@example.com", "wrong-password")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	_, err = svc.SignIn(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// A disabled account cannot sign in even with the right password
	require.NoError(t, repo.Update(ctx, seeded.UUID, map[string]interface{}{"status": false}))
	_, err = svc.SignIn(ctx, "amina@example.com", "correct-horse-battery")
	assert.ErrorIs(t, err, models.ErrAccountDisabled)
}

func TestRegisterAndChangePassword(t *testing.T) {
	cleanup(t)
	ctx := context.Background()
	svc, _, repo := newAuthService(t)

	user := &models.User{
		Name:   "Rahim Uddin",
		Email:  "rahim@example.com",
		Type:   models.UserTypeClient,
		Status: true,
	}
	require.NoError(t, svc.Register(ctx, user, "first-password-123"))
	assert.NotEmpty(t, user.UUID)

	stored, err := repo.GetByEmail(ctx, "rahim@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ProviderLocal, stored.Provider)

	// Registering the same email again conflicts
	dup := &models.User{Name: "Rahim Again", Email: "rahim@example.com", Status: true}
	err = svc.Register(ctx, dup, "another-password-123")
	assert.ErrorIs(t, err, models.ErrConflict)

	require.NoError(t, svc.ChangePassword(ctx, user.UUID, "second-password-456"))

	_, err = svc.SignIn(ctx, "rahim@example.com", "first-password-123")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	resp, err := svc.SignIn(ctx, "rahim@example.com", "second-password-456")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	err = svc.ChangePassword(ctx, "no-such-user-uuid-000", "whatever-password")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
