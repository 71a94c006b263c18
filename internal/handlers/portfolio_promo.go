package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

type PromoBannerStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.PromoBanner, error)
	GetByUUID(ctx context.Context, uuid string) (*models.PromoBanner, error)
	Create(ctx context.Context, b *models.PromoBanner) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type PromoBannerHandler struct {
	store PromoBannerStore
}

func NewPromoBannerHandler(store PromoBannerStore) *PromoBannerHandler {
	return &PromoBannerHandler{store: store}
}

type createPromoBannerRequest struct {
	Name          string  `json:"name" validate:"required,min=1"`
	Image         string  `json:"image" validate:"required,min=1"`
	DiscountType  string  `json:"discount_type" validate:"required,oneof=percentage taka"`
	Discount      string  `json:"discount" validate:"required"`
	StartDatetime string  `json:"start_datetime" validate:"required,datetime=2006-01-02 15:04:05"`
	EndDatetime   string  `json:"end_datetime" validate:"required,datetime=2006-01-02 15:04:05"`
	Remarks       *string `json:"remarks"`
}

type updatePromoBannerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Image         *string `json:"image" validate:"omitempty,min=1"`
	DiscountType  *string `json:"discount_type" validate:"omitempty,oneof=percentage taka"`
	Discount      *string `json:"discount"`
	StartDatetime *string `json:"start_datetime" validate:"omitempty,datetime=2006-01-02 15:04:05"`
	EndDatetime   *string `json:"end_datetime" validate:"omitempty,datetime=2006-01-02 15:04:05"`
	Remarks       *string `json:"remarks"`
}

func (req *updatePromoBannerRequest) fields() (map[string]interface{}, error) {
	f := map[string]interface{}{}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Image != nil {
		f["image"] = *req.Image
	}
	if req.DiscountType != nil {
		f["discount_type"] = *req.DiscountType
	}
	if req.Discount != nil {
		f["discount"] = *req.Discount
	}
	if req.StartDatetime != nil {
		dt, err := models.ParseDateTime(*req.StartDatetime)
		if err != nil {
			return nil, err
		}
		f["start_datetime"] = dt
	}
	if req.EndDatetime != nil {
		dt, err := models.ParseDateTime(*req.EndDatetime)
		if err != nil {
			return nil, err
		}
		f["end_datetime"] = dt
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f, nil
}

func (h *PromoBannerHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *PromoBannerHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *PromoBannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPromoBannerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	// Format is already validated; parse cannot fail here
	start, err := models.ParseDateTime(req.StartDatetime)
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid start_datetime")
		return
	}
	end, err := models.ParseDateTime(req.EndDatetime)
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid end_datetime")
		return
	}

	b := &models.PromoBanner{
		Name:          req.Name,
		Image:         req.Image,
		DiscountType:  req.DiscountType,
		Discount:      req.Discount,
		StartDatetime: start,
		EndDatetime:   end,
		CreatedBy:     creatorUUID(r),
		Remarks:       req.Remarks,
	}

	if err := h.store.Create(r.Context(), b); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", b.Name)
}

func (h *PromoBannerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePromoBannerRequest
	if !decodePatch(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	fields, err := req.fields()
	if err != nil {
		pkghttp.WriteBadRequest(w, "Invalid datetime value")
		return
	}
	if len(fields) == 0 {
		pkghttp.WriteNotFound(w)
		return
	}

	if err := h.store.Update(r.Context(), chi.URLParam(r, "uuid"), fields); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "update", "promo banner")
}

func (h *PromoBannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "promo banner")
}

type PromoBannerProductStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.PromoBannerProduct, error)
	GetByUUID(ctx context.Context, uuid string) (*models.PromoBannerProduct, error)
	Create(ctx context.Context, b *models.PromoBannerProduct) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type PromoBannerProductHandler struct {
	store PromoBannerProductStore
}

func NewPromoBannerProductHandler(store PromoBannerProductStore) *PromoBannerProductHandler {
	return &PromoBannerProductHandler{store: store}
}

type createPromoBannerProductRequest struct {
	PromoBannerUUID *string `json:"promo_banner_uuid" validate:"required,len=21"`
	ProductUUID     *string `json:"product_uuid" validate:"required,len=21"`
	Remarks         *string `json:"remarks"`
}

type updatePromoBannerProductRequest struct {
	PromoBannerUUID *string `json:"promo_banner_uuid" validate:"omitempty,len=21"`
	ProductUUID     *string `json:"product_uuid" validate:"omitempty,len=21"`
	Remarks         *string `json:"remarks"`
}

func (req *updatePromoBannerProductRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.PromoBannerUUID != nil {
		f["promo_banner_uuid"] = *req.PromoBannerUUID
	}
	if req.ProductUUID != nil {
		f["product_uuid"] = *req.ProductUUID
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *PromoBannerProductHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *PromoBannerProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *PromoBannerProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPromoBannerProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	b := &models.PromoBannerProduct{
		PromoBannerUUID: req.PromoBannerUUID,
		ProductUUID:     req.ProductUUID,
		CreatedBy:       creatorUUID(r),
		Remarks:         req.Remarks,
	}

	if err := h.store.Create(r.Context(), b); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", "promo banner product")
}

func (h *PromoBannerProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePromoBannerProductRequest
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

	pkghttp.WriteToast(w, "update", "promo banner product")
}

func (h *PromoBannerProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "promo banner product")
}
