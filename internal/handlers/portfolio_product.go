package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

type ProductStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.Product, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type ProductHandler struct {
	store ProductStore
}

func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

type createProductRequest struct {
	ProductSubCategoryUUID *string `json:"product_sub_category_uuid" validate:"omitempty,len=21"`
	Image                  string  `json:"image" validate:"required,min=1"`
	Name                   string  `json:"name" validate:"required,min=1"`
	Quantity               float64 `json:"quantity" validate:"gte=0"`
	Unit                   string  `json:"unit" validate:"required,min=1"`
	Price                  float64 `json:"price" validate:"gte=0"`
	Description            string  `json:"description" validate:"required"`
	Nutrition              string  `json:"nutrition" validate:"required"`
	IsPublished            bool    `json:"is_published"`
	IsVatable              bool    `json:"is_vatable"`
	IsFeatured             bool    `json:"is_featured"`
	IsPopular              bool    `json:"is_popular"`
	IsVariableWeight       bool    `json:"is_variable_weight"`
	Remarks                *string `json:"remarks"`
}

type updateProductRequest struct {
	ProductSubCategoryUUID *string  `json:"product_sub_category_uuid" validate:"omitempty,len=21"`
	Image                  *string  `json:"image" validate:"omitempty,min=1"`
	Name                   *string  `json:"name" validate:"omitempty,min=1"`
	Quantity               *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit                   *string  `json:"unit" validate:"omitempty,min=1"`
	Price                  *float64 `json:"price" validate:"omitempty,gte=0"`
	Description            *string  `json:"description"`
	Nutrition              *string  `json:"nutrition"`
	IsPublished            *bool    `json:"is_published"`
	IsVatable              *bool    `json:"is_vatable"`
	IsFeatured             *bool    `json:"is_featured"`
	IsPopular              *bool    `json:"is_popular"`
	IsVariableWeight       *bool    `json:"is_variable_weight"`
	Remarks                *string  `json:"remarks"`
}

func (req *updateProductRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.ProductSubCategoryUUID != nil {
		f["product_sub_category_uuid"] = *req.ProductSubCategoryUUID
	}
	if req.Image != nil {
		f["image"] = *req.Image
	}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Quantity != nil {
		f["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		f["unit"] = *req.Unit
	}
	if req.Price != nil {
		f["price"] = *req.Price
	}
	if req.Description != nil {
		f["description"] = *req.Description
	}
	if req.Nutrition != nil {
		f["nutrition"] = *req.Nutrition
	}
	if req.IsPublished != nil {
		f["is_published"] = *req.IsPublished
	}
	if req.IsVatable != nil {
		f["is_vatable"] = *req.IsVatable
	}
	if req.IsFeatured != nil {
		f["is_featured"] = *req.IsFeatured
	}
	if req.IsPopular != nil {
		f["is_popular"] = *req.IsPopular
	}
	if req.IsVariableWeight != nil {
		f["is_variable_weight"] = *req.IsVariableWeight
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	p := &models.Product{
		ProductSubCategoryUUID: req.ProductSubCategoryUUID,
		Image:                  req.Image,
		Name:                   req.Name,
		Quantity:               req.Quantity,
		Unit:                   req.Unit,
		Price:                  req.Price,
		Description:            req.Description,
		Nutrition:              req.Nutrition,
		IsPublished:            req.IsPublished,
		IsVatable:              req.IsVatable,
		IsFeatured:             req.IsFeatured,
		IsPopular:              req.IsPopular,
		IsVariableWeight:       req.IsVariableWeight,
		CreatedBy:              creatorUUID(r),
		Remarks:                req.Remarks,
	}

	if err := h.store.Create(r.Context(), p); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", p.Name)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
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

	pkghttp.WriteToast(w, "update", "product")
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "product")
}
