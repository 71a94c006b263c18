package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/models"
	pkgauth "github.com/mahin-rahman/greenbasket/pkg/auth"
	pkglogger "github.com/mahin-rahman/greenbasket/pkg/logger"
	"github.com/mahin-rahman/greenbasket/pkg/nanoid"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// GoogleService drives the OAuth authorization-code flow against Google.
// Provider rejections (failed code exchange, failed userinfo fetch) map to
// ErrUnauthorized, an unverified email to ErrEmailNotVerified; transport
// and decode failures bubble up for a generic 500.
type GoogleService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	authURL      string
	tokenURL     string
	userInfoURL  string
	httpClient   *http.Client
	repo         UserRepository
	tm           *auth.TokenManager
	logger       *slog.Logger
	auditLogger  *pkglogger.AuditLogger
}

func NewGoogleService(clientID, clientSecret, redirectURI string, repo UserRepository, tm *auth.TokenManager, logger *slog.Logger, auditLogger *pkglogger.AuditLogger) *GoogleService {
	return &GoogleService{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		authURL:      googleAuthURL,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		repo:         repo,
		tm:           tm,
		logger:       logger,
		auditLogger:  auditLogger,
	}
}

// AuthURL builds the consent screen redirect target.
func (s *GoogleService) AuthURL() string {
	q := url.Values{}
	q.Set("client_id", s.clientID)
	q.Set("redirect_uri", s.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("access_type", "offline")
	q.Set("prompt", "select_account")

	return s.authURL + "?" + q.Encode()
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Callback exchanges the authorization code, fetches the profile and
// resolves the local user, creating one on first sign-in.
func (s *GoogleService) Callback(ctx context.Context, code string) (*SignInResponse, error) {
	accessToken, err := s.exchangeCode(ctx, code)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
				EventType:     "oauth_failed",
				Provider:      models.ProviderGoogle,
				FailureReason: "code_exchange_rejected",
			})
		}
		return nil, err
	}

	info, err := s.fetchUserInfo(ctx, accessToken)
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
				EventType:     "oauth_failed",
				Provider:      models.ProviderGoogle,
				FailureReason: "userinfo_rejected",
			})
		}
		return nil, err
	}

	if !info.EmailVerified {
		s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
			EventType:     "oauth_failed",
			Provider:      models.ProviderGoogle,
			FailureReason: "email_not_verified",
		})
		return nil, models.ErrEmailNotVerified
	}

	user, err := s.resolveUser(ctx, info)
	if err != nil {
		return nil, err
	}

	token, err := s.tm.Generate(user)
	if err != nil {
		s.logger.Error("failed to generate token", slog.String("user_uuid", user.UUID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.auditLogger.LogAuthAttempt(pkglogger.AuditEvent{
		EventType: "oauth_success",
		UserUUID:  user.UUID,
		Provider:  models.ProviderGoogle,
		Success:   true,
	})

	return &SignInResponse{
		Token: token,
		User:  userProjection(user),
	}, nil
}

func (s *GoogleService) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		s.logger.Warn("google rejected code exchange",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return "", models.ErrUnauthorized
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", models.ErrUnauthorized
	}

	return payload.AccessToken, nil
}

func (s *GoogleService) fetchUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("google rejected userinfo fetch", slog.Int("status", resp.StatusCode))
		return nil, models.ErrUnauthorized
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	if info.Email == "" {
		return nil, models.ErrUnauthorized
	}

	return &info, nil
}

// resolveUser finds the local account by email or creates one. Accounts
// created through Google get a random placeholder secret and start
// enabled, since Google already verified the address.
func (s *GoogleService) resolveUser(ctx context.Context, info *googleUserInfo) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	secret, err := nanoid.New()
	if err != nil {
		return nil, models.ErrInternalServer
	}
	hash, err := pkgauth.HashPassword(secret)
	if err != nil {
		s.logger.Error("failed to hash placeholder secret", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = email
	}

	user = &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Type:         models.UserTypeClient,
		Status:       true,
		Provider:     models.ProviderGoogle,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create google user", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user created via google sign-in", slog.String("user_uuid", user.UUID))
	return user, nil
}
