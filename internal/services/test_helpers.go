package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/mahin-rahman/greenbasket/internal/models"
	pkglogger "github.com/mahin-rahman/greenbasket/pkg/logger"
)

// mockUserRepo is a function-field test double for UserRepository.
type mockUserRepo struct {
	getByEmailFn     func(ctx context.Context, email string) (*models.User, error)
	createFn         func(ctx context.Context, user *models.User) error
	updatePasswordFn func(ctx context.Context, uuid, passwordHash string) error

	created []*models.User
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, user); err != nil {
			return err
		}
	}
	if user.UUID == "" {
		user.UUID = "created-user-uuid-0001"
	}
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, uuid, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, uuid, passwordHash)
	}
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuditLogger() *pkglogger.AuditLogger {
	return pkglogger.NewAuditLogger(newTestLogger())
}
