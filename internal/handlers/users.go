package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

// UserStore is the user CRUD surface behind the HR endpoints.
type UserStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.User, error)
	GetByUUID(ctx context.Context, uuid string) (*models.User, error)
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type UserHandler struct {
	store UserStore
	auth  AuthFlow
}

func NewUserHandler(store UserStore, auth AuthFlow) *UserHandler {
	return &UserHandler{
		store: store,
		auth:  auth,
	}
}

type createUserRequest struct {
	Name      string  `json:"name" validate:"required,min=1"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Type      string  `json:"type" validate:"omitempty,oneof=client partner admin"`
	Status    bool    `json:"status"`
	CanAccess *string `json:"can_access"`
	Remarks   *string `json:"remarks"`
}

type updateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Type      *string `json:"type" validate:"omitempty,oneof=client partner admin"`
	Status    *bool   `json:"status"`
	CanAccess *string `json:"can_access"`
	Remarks   *string `json:"remarks"`
}

func (req *updateUserRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Phone != nil {
		f["phone"] = *req.Phone
	}
	if req.Address != nil {
		f["address"] = *req.Address
	}
	if req.Gender != nil {
		f["gender"] = *req.Gender
	}
	if req.Type != nil {
		f["type"] = *req.Type
	}
	if req.Status != nil {
		f["status"] = *req.Status
	}
	if req.CanAccess != nil {
		f["can_access"] = *req.CanAccess
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, user)
}

// Create handles registration: the password is hashed by the auth service
// before the record is stored.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Gender:    req.Gender,
		Type:      req.Type,
		Status:    req.Status,
		CanAccess: req.CanAccess,
		Remarks:   req.Remarks,
	}

	if err := h.auth.Register(r.Context(), user, req.Password); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", user.Name)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !decodePatch(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	fields := req.fields()
	if len(fields) == 0 {
		pkghttp.WriteNotFound(w)
		return
	}

	if err := h.store.Update(r.Context(), chi.URLParam(r, "uuid"), fields); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "update", "user")
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "user")
}
