package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

type RecipeStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.Recipe, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Recipe, error)
	Create(ctx context.Context, rec *models.Recipe) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type RecipeHandler struct {
	store RecipeStore
}

func NewRecipeHandler(store RecipeStore) *RecipeHandler {
	return &RecipeHandler{store: store}
}

type createRecipeRequest struct {
	ProductSubCategoryUUID *string `json:"product_sub_category_uuid" validate:"omitempty,len=21"`
	Title                  string  `json:"title" validate:"required,min=1"`
	YoutubeURL             string  `json:"youtube_url" validate:"required,url"`
	Remarks                *string `json:"remarks"`
}

type updateRecipeRequest struct {
	ProductSubCategoryUUID *string `json:"product_sub_category_uuid" validate:"omitempty,len=21"`
	Title                  *string `json:"title" validate:"omitempty,min=1"`
	YoutubeURL             *string `json:"youtube_url" validate:"omitempty,url"`
	Remarks                *string `json:"remarks"`
}

func (req *updateRecipeRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.ProductSubCategoryUUID != nil {
		f["product_sub_category_uuid"] = *req.ProductSubCategoryUUID
	}
	if req.Title != nil {
		f["title"] = *req.Title
	}
	if req.YoutubeURL != nil {
		f["youtube_url"] = *req.YoutubeURL
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	rec := &models.Recipe{
		ProductSubCategoryUUID: req.ProductSubCategoryUUID,
		Title:                  req.Title,
		YoutubeURL:             req.YoutubeURL,
		CreatedBy:              creatorUUID(r),
		Remarks:                req.Remarks,
	}

	if err := h.store.Create(r.Context(), rec); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", rec.Title)
}

func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRecipeRequest
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

	pkghttp.WriteToast(w, "update", "recipe")
}

func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "recipe")
}

type TestimonialStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.Testimonial, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type TestimonialHandler struct {
	store TestimonialStore
}

func NewTestimonialHandler(store TestimonialStore) *TestimonialHandler {
	return &TestimonialHandler{store: store}
}

type createTestimonialRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image" validate:"required,min=1"`
	Remarks     *string `json:"remarks"`
}

type updateTestimonialRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Image       *string `json:"image" validate:"omitempty,min=1"`
	Remarks     *string `json:"remarks"`
}

func (req *updateTestimonialRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Description != nil {
		f["description"] = *req.Description
	}
	if req.Image != nil {
		f["image"] = *req.Image
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *TestimonialHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	t := &models.Testimonial{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CreatedBy:   creatorUUID(r),
		Remarks:     req.Remarks,
	}

	if err := h.store.Create(r.Context(), t); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", t.Name)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateTestimonialRequest
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

	pkghttp.WriteToast(w, "update", "testimonial")
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "testimonial")
}
