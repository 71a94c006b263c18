package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	"github.com/mahin-rahman/greenbasket/internal/services"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

type ContactStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.ContactMessage, error)
	GetByID(ctx context.Context, id int64) (*models.ContactMessage, error)
	Create(ctx context.Context, m *models.ContactMessage) error
	Delete(ctx context.Context, id int64) error
}

// ContactHandler takes public contact form submissions and notifies the
// team inbox. The notification is best-effort: a failed send never fails
// the request.
type ContactHandler struct {
	store    ContactStore
	notifier services.ContactNotifier
	logger   *slog.Logger
}

func NewContactHandler(store ContactStore, notifier services.ContactNotifier, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=1"`
	Message string `json:"message" validate:"required,min=1"`
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid id")
		return
	}

	item, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	m := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.store.Create(r.Context(), m); err != nil {
		writeRepoError(w, err)
		return
	}

	if err := h.notifier.NotifyNewMessage(r.Context(), m); err != nil {
		h.logger.Warn("contact notification failed", slog.Any("error", err))
	}

	pkghttp.WriteToast(w, "create", "contact message")
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "contact message")
}
