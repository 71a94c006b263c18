// Package services holds the business logic behind the auth endpoints and
// the outbound contact notification.
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/models"
	pkgauth "github.com/mahin-rahman/greenbasket/pkg/auth"
	pkglogger "github.com/mahin-rahman/greenbasket/pkg/logger"
)

// UserRepository is the slice of the user store the auth flows need.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, uuid, passwordHash string) error
}

// AuthService handles local email/password authentication.
type AuthService struct {
	repo        UserRepository
	tm          *auth.TokenManager
	logger      *slog.Logger
	auditLogger *pkglogger.AuditLogger
}

func NewAuthService(repo UserRepository, tm *auth.TokenManager, logger *slog.Logger, auditLogger *pkglogger.AuditLogger) *AuthService {
	return &AuthService{
		repo:        repo,
		tm:          tm,
		logger:      logger,
		auditLogger: auditLogger,
	}
}

// UserProjection is the user shape returned from auth endpoints. The
// password hash never appears here.
type UserProjection struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type,omitempty"`
}

// SignInResponse is the payload for a successful sign-in.
type SignInResponse struct {
	Token     string          `json:"token"`
	User      *UserProjection `json:"user"`
	CanAccess *string         `json:"can_access,omitempty"`
}

// SignIn authenticates an email/password pair. Unknown emails map to
// ErrNotFound, disabled accounts to ErrAccountDisabled and a bad password
// to ErrUnauthorized; the handler picks the response message per error.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*SignInResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
				EventType:     "signin_failed",
				Provider:      models.ProviderLocal,
				FailureReason: "unknown_email",
			})
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if !user.Status {
		s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "signin_failed",
			UserUUID:      user.UUID,
			Provider:      models.ProviderLocal,
			FailureReason: "account_disabled",
		})
		return nil, models.ErrAccountDisabled
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "signin_failed",
			UserUUID:      user.UUID,
			Provider:      models.ProviderLocal,
			FailureReason: "invalid_credentials",
		})
		return nil, models.ErrUnauthorized
	}

	token, err := s.tm.Generate(user)
	if err != nil {
		s.logger.Error("failed to generate token", slog.String("user_uuid", user.UUID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "signin_success",
		UserUUID:  user.UUID,
		Provider:  models.ProviderLocal,
		Success:   true,
	})

	return &SignInResponse{
		Token:     token,
		User:      userProjection(user),
		CanAccess: user.CanAccess,
	}, nil
}

// Register hashes the password with a fresh salt and creates the user.
// Duplicate emails surface as ErrConflict from the repository.
func (s *AuthService) Register(ctx context.Context, user *models.User, password string) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	hash, err := pkgauth.HashPassword(password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return models.ErrInternalServer
	}
	user.PasswordHash = hash
	user.Provider = models.ProviderLocal

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return models.ErrConflict
		}
		s.logger.Error("failed to create user", slog.Any("error", err))
		return models.ErrInternalServer
	}

	s.logger.Info("user registered", slog.String("user_uuid", user.UUID))
	return nil
}

// ChangePassword re-hashes and stores a new password. An unknown uuid
// surfaces as ErrNotFound.
func (s *AuthService) ChangePassword(ctx context.Context, uuid, newPassword string) error {
	hash, err := pkgauth.HashPassword(newPassword)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := s.repo.UpdatePassword(ctx, uuid, hash); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.auditLogger.LogPasswordChange(uuid, false)
			return models.ErrNotFound
		}
		s.logger.Error("failed to update password", slog.String("user_uuid", uuid), slog.Any("error", err))
		return models.ErrInternalServer
	}

	s.auditLogger.LogPasswordChange(uuid, true)
	return nil
}

func userProjection(user *models.User) *UserProjection {
	return &UserProjection{
		UUID:  user.UUID,
		Name:  user.Name,
		Email: user.Email,
		Type:  user.Type,
	}
}
