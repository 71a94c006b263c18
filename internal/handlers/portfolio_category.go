package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

type ProductCategoryStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.ProductCategory, error)
	GetByUUID(ctx context.Context, uuid string) (*models.ProductCategory, error)
	Create(ctx context.Context, c *models.ProductCategory) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type ProductCategoryHandler struct {
	store ProductCategoryStore
}

func NewProductCategoryHandler(store ProductCategoryStore) *ProductCategoryHandler {
	return &ProductCategoryHandler{store: store}
}

type createProductCategoryRequest struct {
	Name    string  `json:"name" validate:"required,min=1"`
	Image   string  `json:"image" validate:"required,min=1"`
	Status  bool    `json:"status"`
	Remarks *string `json:"remarks"`
}

type updateProductCategoryRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Image   *string `json:"image" validate:"omitempty,min=1"`
	Status  *bool   `json:"status"`
	Remarks *string `json:"remarks"`
}

func (req *updateProductCategoryRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Image != nil {
		f["image"] = *req.Image
	}
	if req.Status != nil {
		f["status"] = *req.Status
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *ProductCategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *ProductCategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *ProductCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	c := &models.ProductCategory{
		Name:      req.Name,
		Image:     req.Image,
		Status:    req.Status,
		CreatedBy: creatorUUID(r),
		Remarks:   req.Remarks,
	}

	if err := h.store.Create(r.Context(), c); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", c.Name)
}

func (h *ProductCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductCategoryRequest
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

	pkghttp.WriteToast(w, "update", "product category")
}

func (h *ProductCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "product category")
}

type ProductSubCategoryStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.ProductSubCategory, error)
	GetByUUID(ctx context.Context, uuid string) (*models.ProductSubCategory, error)
	Create(ctx context.Context, c *models.ProductSubCategory) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type ProductSubCategoryHandler struct {
	store ProductSubCategoryStore
}

func NewProductSubCategoryHandler(store ProductSubCategoryStore) *ProductSubCategoryHandler {
	return &ProductSubCategoryHandler{store: store}
}

type createProductSubCategoryRequest struct {
	ProductCategoryUUID *string `json:"product_category_uuid" validate:"required,len=21"`
	Name                string  `json:"name" validate:"required,min=1"`
	Image               string  `json:"image" validate:"required,min=1"`
	Status              bool    `json:"status"`
	Remarks             *string `json:"remarks"`
}

type updateProductSubCategoryRequest struct {
	ProductCategoryUUID *string `json:"product_category_uuid" validate:"omitempty,len=21"`
	Name                *string `json:"name" validate:"omitempty,min=1"`
	Image               *string `json:"image" validate:"omitempty,min=1"`
	Status              *bool   `json:"status"`
	Remarks             *string `json:"remarks"`
}

func (req *updateProductSubCategoryRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.ProductCategoryUUID != nil {
		f["product_category_uuid"] = *req.ProductCategoryUUID
	}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Image != nil {
		f["image"] = *req.Image
	}
	if req.Status != nil {
		f["status"] = *req.Status
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *ProductSubCategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *ProductSubCategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *ProductSubCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductSubCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	c := &models.ProductSubCategory{
		ProductCategoryUUID: req.ProductCategoryUUID,
		Name:                req.Name,
		Image:               req.Image,
		Status:              req.Status,
		CreatedBy:           creatorUUID(r),
		Remarks:             req.Remarks,
	}

	if err := h.store.Create(r.Context(), c); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", c.Name)
}

func (h *ProductSubCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductSubCategoryRequest
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

	pkghttp.WriteToast(w, "update", "product sub category")
}

func (h *ProductSubCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "product sub category")
}
