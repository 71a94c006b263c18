package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	"github.com/mahin-rahman/greenbasket/internal/services"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
	"github.com/stretchr/testify/assert"
)

func newTestRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withAuthContext(req *http.Request) *http.Request {
	claims := &models.TokenClaims{
		UUID:  "V1StGXR8_Z5jdHi6B-myT",
		Name:  "Test User",
		Email: "user@example.com",
	}
	ctx := context.WithValue(req.Context(), auth.UserContextKey, claims)
	return req.WithContext(ctx)
}

func withChiParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func assertToast(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()

	assert.Equal(t, http.StatusOK, w.Code)

	var toast pkghttp.Toast
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &toast))
	assert.Equal(t, expected, toast.Message)
}

func assertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) pkghttp.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code)

	var resp pkghttp.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expectedCode, resp.Error)
	assert.NotEmpty(t, resp.Message)
	return resp
}

type mockAuthFlow struct {
	signInFn         func(ctx context.Context, email, password string) (*services.SignInResponse, error)
	registerFn       func(ctx context.Context, user *models.User, password string) error
	changePasswordFn func(ctx context.Context, uuid, newPassword string) error
}

func (m *mockAuthFlow) SignIn(ctx context.Context, email, password string) (*services.SignInResponse, error) {
	if m.signInFn == nil {
		return nil, models.ErrUnauthorized
	}
	return m.signInFn(ctx, email, password)
}

func (m *mockAuthFlow) Register(ctx context.Context, user *models.User, password string) error {
	if m.registerFn == nil {
		return models.ErrConflict
	}
	return m.registerFn(ctx, user, password)
}

func (m *mockAuthFlow) ChangePassword(ctx context.Context, uuid, newPassword string) error {
	if m.changePasswordFn == nil {
		return models.ErrNotFound
	}
	return m.changePasswordFn(ctx, uuid, newPassword)
}

type mockGoogleFlow struct {
	authURL    string
	callbackFn func(ctx context.Context, code string) (*services.SignInResponse, error)
}

func (m *mockGoogleFlow) AuthURL() string {
	return m.authURL
}

func (m *mockGoogleFlow) Callback(ctx context.Context, code string) (*services.SignInResponse, error) {
	if m.callbackFn == nil {
		return nil, models.ErrUnauthorized
	}
	return m.callbackFn(ctx, code)
}

type mockUserStore struct {
	listFn   func(ctx context.Context, p query.ListParams) ([]*models.User, error)
	getFn    func(ctx context.Context, uuid string) (*models.User, error)
	updateFn func(ctx context.Context, uuid string, fields map[string]interface{}) error
	deleteFn func(ctx context.Context, uuid string) error
}

func (m *mockUserStore) List(ctx context.Context, p query.ListParams) ([]*models.User, error) {
	if m.listFn == nil {
		return []*models.User{}, nil
	}
	return m.listFn(ctx, p)
}

func (m *mockUserStore) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	if m.getFn == nil {
		return nil, models.ErrNotFound
	}
	return m.getFn(ctx, uuid)
}

func (m *mockUserStore) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	if m.updateFn == nil {
		return models.ErrNotFound
	}
	return m.updateFn(ctx, uuid, fields)
}

func (m *mockUserStore) Delete(ctx context.Context, uuid string) error {
	if m.deleteFn == nil {
		return models.ErrNotFound
	}
	return m.deleteFn(ctx, uuid)
}

type mockCategoryStore struct {
	listFn   func(ctx context.Context, p query.ListParams) ([]*models.ProductCategory, error)
	getFn    func(ctx context.Context, uuid string) (*models.ProductCategory, error)
	createFn func(ctx context.Context, c *models.ProductCategory) error
	updateFn func(ctx context.Context, uuid string, fields map[string]interface{}) error
	deleteFn func(ctx context.Context, uuid string) error
}

func (m *mockCategoryStore) List(ctx context.Context, p query.ListParams) ([]*models.ProductCategory, error) {
	if m.listFn == nil {
		return []*models.ProductCategory{}, nil
	}
	return m.listFn(ctx, p)
}

func (m *mockCategoryStore) GetByUUID(ctx context.Context, uuid string) (*models.ProductCategory, error) {
	if m.getFn == nil {
		return nil, models.ErrNotFound
	}
	return m.getFn(ctx, uuid)
}

func (m *mockCategoryStore) Create(ctx context.Context, c *models.ProductCategory) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, c)
}

func (m *mockCategoryStore) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	if m.updateFn == nil {
		return models.ErrNotFound
	}
	return m.updateFn(ctx, uuid, fields)
}

func (m *mockCategoryStore) Delete(ctx context.Context, uuid string) error {
	if m.deleteFn == nil {
		return models.ErrNotFound
	}
	return m.deleteFn(ctx, uuid)
}

type mockOrderProductStore struct {
	listFn   func(ctx context.Context, p query.ListParams) ([]*models.OrderProduct, error)
	getFn    func(ctx context.Context, uuid string) (*models.OrderProduct, error)
	createFn func(ctx context.Context, p *models.OrderProduct) error
	updateFn func(ctx context.Context, uuid string, fields map[string]interface{}) error
	deleteFn func(ctx context.Context, uuid string) error
}

func (m *mockOrderProductStore) List(ctx context.Context, p query.ListParams) ([]*models.OrderProduct, error) {
	if m.listFn == nil {
		return []*models.OrderProduct{}, nil
	}
	return m.listFn(ctx, p)
}

func (m *mockOrderProductStore) GetByUUID(ctx context.Context, uuid string) (*models.OrderProduct, error) {
	if m.getFn == nil {
		return nil, models.ErrNotFound
	}
	return m.getFn(ctx, uuid)
}

func (m *mockOrderProductStore) Create(ctx context.Context, p *models.OrderProduct) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, p)
}

func (m *mockOrderProductStore) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	if m.updateFn == nil {
		return models.ErrNotFound
	}
	return m.updateFn(ctx, uuid, fields)
}

func (m *mockOrderProductStore) Delete(ctx context.Context, uuid string) error {
	if m.deleteFn == nil {
		return models.ErrNotFound
	}
	return m.deleteFn(ctx, uuid)
}

type mockContactStore struct {
	listFn   func(ctx context.Context, p query.ListParams) ([]*models.ContactMessage, error)
	getFn    func(ctx context.Context, id int64) (*models.ContactMessage, error)
	createFn func(ctx context.Context, m *models.ContactMessage) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockContactStore) List(ctx context.Context, p query.ListParams) ([]*models.ContactMessage, error) {
	if m.listFn == nil {
		return []*models.ContactMessage{}, nil
	}
	return m.listFn(ctx, p)
}

func (m *mockContactStore) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	if m.getFn == nil {
		return nil, models.ErrNotFound
	}
	return m.getFn(ctx, id)
}

func (m *mockContactStore) Create(ctx context.Context, msg *models.ContactMessage) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, msg)
}

func (m *mockContactStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return models.ErrNotFound
	}
	return m.deleteFn(ctx, id)
}

type mockNotifier struct {
	err      error
	notified []*models.ContactMessage
}

func (m *mockNotifier) NotifyNewMessage(ctx context.Context, msg *models.ContactMessage) error {
	m.notified = append(m.notified, msg)
	return m.err
}
