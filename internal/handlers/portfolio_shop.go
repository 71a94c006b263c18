package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

type ShopStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.Shop, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Shop, error)
	Create(ctx context.Context, s *models.Shop) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type ShopHandler struct {
	store ShopStore
}

func NewShopHandler(store ShopStore) *ShopHandler {
	return &ShopHandler{store: store}
}

type createShopRequest struct {
	Name    string  `json:"name" validate:"required,min=1"`
	Address string  `json:"address" validate:"required,min=1"`
	Image   string  `json:"image" validate:"required,min=1"`
	Remarks *string `json:"remarks"`
}

type updateShopRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Address *string `json:"address" validate:"omitempty,min=1"`
	Image   *string `json:"image" validate:"omitempty,min=1"`
	Remarks *string `json:"remarks"`
}

func (req *updateShopRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Address != nil {
		f["address"] = *req.Address
	}
	if req.Image != nil {
		f["image"] = *req.Image
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShopRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	s := &models.Shop{
		Name:      req.Name,
		Address:   req.Address,
		Image:     req.Image,
		CreatedBy: creatorUUID(r),
		Remarks:   req.Remarks,
	}

	if err := h.store.Create(r.Context(), s); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", s.Name)
}

func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateShopRequest
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

	pkghttp.WriteToast(w, "update", "shop")
}

func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "shop")
}

type SalesPointStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.SalesPoint, error)
	GetByUUID(ctx context.Context, uuid string) (*models.SalesPoint, error)
	Create(ctx context.Context, s *models.SalesPoint) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type SalesPointHandler struct {
	store SalesPointStore
}

func NewSalesPointHandler(store SalesPointStore) *SalesPointHandler {
	return &SalesPointHandler{store: store}
}

type createSalesPointRequest struct {
	ShopUUID  *string `json:"shop_uuid" validate:"required,len=21"`
	Name      string  `json:"name" validate:"required,min=1"`
	Phone     string  `json:"phone" validate:"required,min=1"`
	Details   string  `json:"details" validate:"required"`
	Latitude  string  `json:"latitude" validate:"required"`
	Longitude string  `json:"longitude" validate:"required"`
	Address   string  `json:"address" validate:"required,min=1"`
	Remarks   *string `json:"remarks"`
}

type updateSalesPointRequest struct {
	ShopUUID  *string `json:"shop_uuid" validate:"omitempty,len=21"`
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Phone     *string `json:"phone" validate:"omitempty,min=1"`
	Details   *string `json:"details"`
	Latitude  *string `json:"latitude"`
	Longitude *string `json:"longitude"`
	Address   *string `json:"address" validate:"omitempty,min=1"`
	Remarks   *string `json:"remarks"`
}

func (req *updateSalesPointRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.ShopUUID != nil {
		f["shop_uuid"] = *req.ShopUUID
	}
	if req.Name != nil {
		f["name"] = *req.Name
	}
	if req.Phone != nil {
		f["phone"] = *req.Phone
	}
	if req.Details != nil {
		f["details"] = *req.Details
	}
	if req.Latitude != nil {
		f["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		f["longitude"] = *req.Longitude
	}
	if req.Address != nil {
		f["address"] = *req.Address
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *SalesPointHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *SalesPointHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *SalesPointHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSalesPointRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	s := &models.SalesPoint{
		ShopUUID:  req.ShopUUID,
		Name:      req.Name,
		Phone:     req.Phone,
		Details:   req.Details,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		CreatedBy: creatorUUID(r),
		Remarks:   req.Remarks,
	}

	if err := h.store.Create(r.Context(), s); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", s.Name)
}

func (h *SalesPointHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSalesPointRequest
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

	pkghttp.WriteToast(w, "update", "sales point")
}

func (h *SalesPointHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "sales point")
}

type ProductSalePointStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.ProductSalePoint, error)
	GetByUUID(ctx context.Context, uuid string) (*models.ProductSalePoint, error)
	Create(ctx context.Context, s *models.ProductSalePoint) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type ProductSalePointHandler struct {
	store ProductSalePointStore
}

func NewProductSalePointHandler(store ProductSalePointStore) *ProductSalePointHandler {
	return &ProductSalePointHandler{store: store}
}

type createProductSalePointRequest struct {
	ProductUUID    *string `json:"product_uuid" validate:"required,len=21"`
	SalesPointUUID *string `json:"sales_point_uuid" validate:"required,len=21"`
	Remarks        *string `json:"remarks"`
}

type updateProductSalePointRequest struct {
	ProductUUID    *string `json:"product_uuid" validate:"omitempty,len=21"`
	SalesPointUUID *string `json:"sales_point_uuid" validate:"omitempty,len=21"`
	Remarks        *string `json:"remarks"`
}

func (req *updateProductSalePointRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.ProductUUID != nil {
		f["product_uuid"] = *req.ProductUUID
	}
	if req.SalesPointUUID != nil {
		f["sales_point_uuid"] = *req.SalesPointUUID
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *ProductSalePointHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *ProductSalePointHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *ProductSalePointHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductSalePointRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	s := &models.ProductSalePoint{
		ProductUUID:    req.ProductUUID,
		SalesPointUUID: req.SalesPointUUID,
		CreatedBy:      creatorUUID(r),
		Remarks:        req.Remarks,
	}

	if err := h.store.Create(r.Context(), s); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", "product sale point")
}

func (h *ProductSalePointHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProductSalePointRequest
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

	pkghttp.WriteToast(w, "update", "product sale point")
}

func (h *ProductSalePointHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "product sale point")
}
