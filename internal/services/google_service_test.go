package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGoogle stands in for the token and userinfo endpoints.
type fakeGoogle struct {
	tokenStatus    int
	userInfoStatus int
	userInfoBody   string

	tokenForm url.Values
}

func (f *fakeGoogle) server(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		f.tokenForm = r.PostForm

		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"ya29.test-token","token_type":"Bearer"}`))
	})

	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ya29.test-token", r.Header.Get("Authorization"))

		if f.userInfoStatus != 0 {
			w.WriteHeader(f.userInfoStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		body := f.userInfoBody
		if body == "" {
			body = `{"sub":"10769150350006150715113082367","email":"mahin@example.com","email_verified":true,"name":"Mahin Rahman"}`
		}
		w.Write([]byte(body))
	})

	return httptest.NewServer(mux)
}

func newGoogleTestService(repo *mockUserRepo, srv *httptest.Server) *GoogleService {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/v1/auth/google/callback",
		repo, newTestTokenManager(), newTestLogger(), newTestAuditLogger())
	svc.tokenURL = srv.URL + "/token"
	svc.userInfoURL = srv.URL + "/userinfo"
	svc.httpClient = srv.Client()
	return svc
}

func TestGoogleAuthURL(t *testing.T) {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/v1/auth/google/callback",
		&mockUserRepo{}, newTestTokenManager(), newTestLogger(), newTestAuditLogger())

	u, err := url.Parse(svc.AuthURL())
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", u.Host)
	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/v1/auth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "select_account", q.Get("prompt"))
}

func TestGoogleCallback_CreatesUserOnFirstSignIn(t *testing.T) {
	fake := &fakeGoogle{}
	srv := fake.server(t)
	defer srv.Close()

	repo := &mockUserRepo{}
	svc := newGoogleTestService(repo, srv)

	resp, err := svc.Callback(context.Background(), "auth-code")
	require.NoError(t, err)

	// Exchange carried the full credential set
	assert.Equal(t, "auth-code", fake.tokenForm.Get("code"))
	assert.Equal(t, "client-id", fake.tokenForm.Get("client_id"))
	assert.Equal(t, "client-secret", fake.tokenForm.Get("client_secret"))
	assert.Equal(t, "authorization_code", fake.tokenForm.Get("grant_type"))
	assert.Equal(t, "http://localhost:8080/v1/auth/google/callback", fake.tokenForm.Get("redirect_uri"))

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "mahin@example.com", created.Email)
	assert.Equal(t, models.ProviderGoogle, created.Provider)
	assert.True(t, created.Status)
	assert.NotEmpty(t, created.PasswordHash)

	require.NotNil(t, resp.User)
	assert.Equal(t, "mahin@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestGoogleCallback_ExistingUserIsNotDuplicated(t *testing.T) {
	fake := &fakeGoogle{}
	srv := fake.server(t)
	defer srv.Close()

	existing := activeUser(t, "unused-password")
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return existing, nil
		},
	}
	svc := newGoogleTestService(repo, srv)

	resp, err := svc.Callback(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Empty(t, repo.created)
	assert.Equal(t, existing.UUID, resp.User.UUID)
}

func TestGoogleCallback_CodeExchangeRejected(t *testing.T) {
	fake := &fakeGoogle{tokenStatus: http.StatusBadRequest}
	srv := fake.server(t)
	defer srv.Close()

	svc := newGoogleTestService(&mockUserRepo{}, srv)

	resp, err := svc.Callback(context.Background(), "bad-code")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestGoogleCallback_UserInfoRejected(t *testing.T) {
	fake := &fakeGoogle{userInfoStatus: http.StatusUnauthorized}
	srv := fake.server(t)
	defer srv.Close()

	svc := newGoogleTestService(&mockUserRepo{}, srv)

	resp, err := svc.Callback(context.Background(), "auth-code")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestGoogleCallback_UnverifiedEmail(t *testing.T) {
	fake := &fakeGoogle{
		userInfoBody: `{"sub":"1","email":"mahin@example.com","email_verified":false,"name":"Mahin Rahman"}`,
	}
	srv := fake.server(t)
	defer srv.Close()

	repo := &mockUserRepo{}
	svc := newGoogleTestService(repo, srv)

	resp, err := svc.Callback(context.Background(), "auth-code")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrEmailNotVerified)
	// No account is provisioned for an unverified address
	assert.Empty(t, repo.created)
}

func TestGoogleCallback_TransportFailure(t *testing.T) {
	fake := &fakeGoogle{}
	srv := fake.server(t)

	svc := newGoogleTestService(&mockUserRepo{}, srv)
	srv.Close()

	resp, err := svc.Callback(context.Background(), "auth-code")

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrUnauthorized)
}
