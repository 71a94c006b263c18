package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

type OrderStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.Order, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

type OrderHandler struct {
	store OrderStore
}

func NewOrderHandler(store OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

type orderProductRequest struct {
	ProductUUID *string `json:"product_uuid" validate:"required,len=21"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	IsVatable   bool    `json:"is_vatable"`
	Price       float64 `json:"price" validate:"gte=0"`
	Remarks     *string `json:"remarks"`
}

type createOrderRequest struct {
	UserUUID        *string               `json:"user_uuid" validate:"omitempty,len=21"`
	DeliveryAddress string                `json:"delivery_address" validate:"required,min=1"`
	PaymentMethod   string                `json:"payment_method" validate:"required,min=1"`
	Products        []orderProductRequest `json:"order_product" validate:"required,min=1,dive"`
	Remarks         *string               `json:"remarks"`
}

type updateOrderRequest struct {
	DeliveryAddress *string `json:"delivery_address" validate:"omitempty,min=1"`
	PaymentMethod   *string `json:"payment_method" validate:"omitempty,min=1"`
	Status          *string `json:"status" validate:"omitempty,oneof=accept reject pending"`
	IsDelivered     *bool   `json:"is_delivered"`
	Remarks         *string `json:"remarks"`
}

func (req *updateOrderRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.DeliveryAddress != nil {
		f["delivery_address"] = *req.DeliveryAddress
	}
	if req.PaymentMethod != nil {
		f["payment_method"] = *req.PaymentMethod
	}
	if req.Status != nil {
		f["status"] = *req.Status
	}
	if req.IsDelivered != nil {
		f["is_delivered"] = *req.IsDelivered
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

// Get returns the order together with its line items.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	o := &models.Order{
		UserUUID:        req.UserUUID,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		CreatedBy:       creatorUUID(r),
		Remarks:         req.Remarks,
	}
	for _, item := range req.Products {
		o.Products = append(o.Products, &models.OrderProduct{
			ProductUUID: item.ProductUUID,
			Quantity:    item.Quantity,
			IsVatable:   item.IsVatable,
			Price:       item.Price,
			Remarks:     item.Remarks,
		})
	}

	if err := h.store.Create(r.Context(), o); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", "order")
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
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

	pkghttp.WriteToast(w, "update", "order")
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "order")
}

type OrderProductStore interface {
	List(ctx context.Context, p query.ListParams) ([]*models.OrderProduct, error)
	GetByUUID(ctx context.Context, uuid string) (*models.OrderProduct, error)
	Create(ctx context.Context, p *models.OrderProduct) error
	Update(ctx context.Context, uuid string, fields map[string]interface{}) error
	Delete(ctx context.Context, uuid string) error
}

// OrderProductHandler amends line items on existing orders.
type OrderProductHandler struct {
	store OrderProductStore
}

func NewOrderProductHandler(store OrderProductStore) *OrderProductHandler {
	return &OrderProductHandler{store: store}
}

type createOrderProductRequest struct {
	OrderUUID   *string `json:"order_uuid" validate:"required,len=21"`
	ProductUUID *string `json:"product_uuid" validate:"required,len=21"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	IsVatable   bool    `json:"is_vatable"`
	Price       float64 `json:"price" validate:"gte=0"`
	Remarks     *string `json:"remarks"`
}

type updateOrderProductRequest struct {
	ProductUUID *string  `json:"product_uuid" validate:"omitempty,len=21"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=1"`
	IsVatable   *bool    `json:"is_vatable"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Remarks     *string  `json:"remarks"`
}

func (req *updateOrderProductRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if req.ProductUUID != nil {
		f["product_uuid"] = *req.ProductUUID
	}
	if req.Quantity != nil {
		f["quantity"] = *req.Quantity
	}
	if req.IsVatable != nil {
		f["is_vatable"] = *req.IsVatable
	}
	if req.Price != nil {
		f["price"] = *req.Price
	}
	if req.Remarks != nil {
		f["remarks"] = *req.Remarks
	}
	return f
}

func (h *OrderProductHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), query.ParseListParams(r.URL.Query()))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, items)
}

func (h *OrderProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, item)
}

func (h *OrderProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	p := &models.OrderProduct{
		OrderUUID:   req.OrderUUID,
		ProductUUID: req.ProductUUID,
		Quantity:    req.Quantity,
		IsVatable:   req.IsVatable,
		Price:       req.Price,
		Remarks:     req.Remarks,
	}

	if err := h.store.Create(r.Context(), p); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "create", "order product")
}

func (h *OrderProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateOrderProductRequest
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

	pkghttp.WriteToast(w, "update", "order product")
}

func (h *OrderProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeRepoError(w, err)
		return
	}

	pkghttp.WriteToast(w, "delete", "order product")
}
