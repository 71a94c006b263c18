package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	"github.com/stretchr/testify/assert"
)

func TestCreateProductCategory_StampsCreator(t *testing.T) {
	var created *models.ProductCategory
	store := &mockCategoryStore{
		createFn: func(ctx context.Context, c *models.ProductCategory) error {
			created = c
			return nil
		},
	}
	handler := NewProductCategoryHandler(store)

	req := newTestRequest(t, "POST", "/v1/portfolio/product-categories", map[string]interface{}{
		"name":   "Fruits",
		"image":  "fruits.png",
		"status": true,
	})
	req = withAuthContext(req)
	w := httptest.NewRecorder()
	handler.Create(w, req)

	assertToast(t, w, "create Fruits")
	assert.NotNil(t, created)
	assert.NotNil(t, created.CreatedBy)
	assert.Equal(t, "V1StGXR8_Z5jdHi6B-myT", *created.CreatedBy)
}

func TestCreateProductCategory_MissingFields(t *testing.T) {
	handler := NewProductCategoryHandler(&mockCategoryStore{})

	req := newTestRequest(t, "POST", "/v1/portfolio/product-categories", map[string]interface{}{})
	req = withAuthContext(req)
	w := httptest.NewRecorder()
	handler.Create(w, req)

	resp := assertErrorResponse(t, w, http.StatusUnprocessableEntity, "validation_failed")
	assert.Len(t, resp.Fields, 2)
}

func TestGetProductCategory_NotFound(t *testing.T) {
	handler := NewProductCategoryHandler(&mockCategoryStore{})

	req := httptest.NewRequest("GET", "/v1/portfolio/product-categories/abc", nil)
	req = withChiParams(req, map[string]string{"uuid": "missing-category-uuid0"})
	w := httptest.NewRecorder()
	handler.Get(w, req)

	resp := assertErrorResponse(t, w, http.StatusNotFound, "not_found")
	assert.Equal(t, "Data not found", resp.Message)
}

func TestListProductCategories_PassesQueryParams(t *testing.T) {
	var gotParams query.ListParams
	store := &mockCategoryStore{
		listFn: func(ctx context.Context, p query.ListParams) ([]*models.ProductCategory, error) {
			gotParams = p
			return []*models.ProductCategory{{UUID: "cat-1", Name: "Fruits"}}, nil
		},
	}
	handler := NewProductCategoryHandler(store)

	req := httptest.NewRequest("GET", "/v1/portfolio/product-categories?q=fru&page=2&limit=10", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fru", gotParams.Query)
	assert.Equal(t, 2, gotParams.Page)
	assert.Contains(t, w.Body.String(), "Fruits")
}

func TestUpdateProductCategory_PartialFields(t *testing.T) {
	var gotFields map[string]interface{}
	store := &mockCategoryStore{
		updateFn: func(ctx context.Context, uuid string, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}
	handler := NewProductCategoryHandler(store)

	req := newTestRequest(t, "PATCH", "/v1/portfolio/product-categories/abc", map[string]interface{}{
		"status": false,
	})
	req = withChiParams(req, map[string]string{"uuid": "category-uuid-0000000"})
	w := httptest.NewRecorder()
	handler.Update(w, req)

	assertToast(t, w, "update product category")
	assert.Equal(t, map[string]interface{}{"status": false}, gotFields)
}

func TestDeleteProductCategory_Success(t *testing.T) {
	store := &mockCategoryStore{
		deleteFn: func(ctx context.Context, uuid string) error {
			return nil
		},
	}
	handler := NewProductCategoryHandler(store)

	req := httptest.NewRequest("DELETE", "/v1/portfolio/product-categories/abc", nil)
	req = withChiParams(req, map[string]string{"uuid": "category-uuid-0000000"})
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assertToast(t, w, "delete product category")
}
