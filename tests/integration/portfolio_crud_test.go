package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	"github.com/mahin-rahman/greenbasket/internal/repositories"
)

func seedCategory(t *testing.T, name string, createdBy *string) *models.ProductCategory {
	t.Helper()

	c := &models.ProductCategory{
		Name:      name,
		Image:     name + ".png",
		Status:    true,
		CreatedBy: createdBy,
	}
	require.NoError(t, repositories.NewProductCategoryRepository(testDB.DB).Create(context.Background(), c))
	return c
}

func TestProductCategoryCRUD(t *testing.T) {
	cleanup(t)
	ctx := context.Background()
	repo := repositories.NewProductCategoryRepository(testDB.DB)

	creator, err := SeedUser(ctx, testDB.DB, "Admin User", "admin@example.com", "admin-password-123")
	require.NoError(t, err)

	created := seedCategory(t, "Fruits", &creator.UUID)
	assert.Len(t, created.UUID, 21)

	got, err := repo.GetByUUID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Fruits", got.Name)
	// Join resolves the creator's display name
	require.NotNil(t, got.CreatedByName)
	assert.Equal(t, "Admin User", *got.CreatedByName)

	require.NoError(t, repo.Update(ctx, created.UUID, map[string]interface{}{
		"name":   "Fresh Fruits",
		"status": false,
	}))

	got, err = repo.GetByUUID(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Fruits", got.Name)
	assert.False(t, got.Status)
	assert.NotNil(t, got.UpdatedAt)

	err = repo.Update(ctx, "no-such-category-uuid", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, created.UUID))
	_, err = repo.GetByUUID(ctx, created.UUID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProductCategoryList_SearchSortPaginate(t *testing.T) {
	cleanup(t)
	ctx := context.Background()
	repo := repositories.NewProductCategoryRepository(testDB.DB)

	for _, name := range []string{"Fruits", "Vegetables", "Dairy", "Dry Fruits"} {
		seedCategory(t, name, nil)
	}

	found, err := repo.List(ctx, query.ListParams{Query: "fruit"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	sorted, err := repo.List(ctx, query.ListParams{Sort: "name", OrderBy: "asc"})
	require.NoError(t, err)
	require.Len(t, sorted, 4)
	assert.Equal(t, "Dairy", sorted[0].Name)

	// Pagination only applies when both page and limit are present
	page, err := repo.List(ctx, query.ListParams{Sort: "name", OrderBy: "asc", Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Fruits", page[0].Name)

	all, err := repo.List(ctx, query.ListParams{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestOrderCreate_WithLineItems(t *testing.T) {
	cleanup(t)
	ctx := context.Background()

	customer, err := SeedUser(ctx, testDB.DB, "Customer", "customer@example.com", "customer-pass-123")
	require.NoError(t, err)

	category := seedCategory(t, "Fruits", nil)

	subRepo := repositories.NewProductSubCategoryRepository(testDB.DB)
	sub := &models.ProductSubCategory{
		ProductCategoryUUID: &category.UUID,
		Name:                "Citrus",
		Image:               "citrus.png",
		Status:              true,
	}
	require.NoError(t, subRepo.Create(ctx, sub))

	productRepo := repositories.NewProductRepository(testDB.DB)
	orange := &models.Product{
		ProductSubCategoryUUID: &sub.UUID,
		Name:                   "Orange",
		Image:                  "orange.png",
		Quantity:               1,
		Unit:                   "kg",
		Price:                  240,
		IsPublished:            true,
	}
	require.NoError(t, productRepo.Create(ctx, orange))

	lemon := &models.Product{
		ProductSubCategoryUUID: &sub.UUID,
		Name:                   "Lemon",
		Image:                  "lemon.png",
		Quantity:               1,
		Unit:                   "pc",
		Price:                  15,
		IsPublished:            true,
	}
	require.NoError(t, productRepo.Create(ctx, lemon))

	orderRepo := repositories.NewOrderRepository(testDB.DB)
	order := &models.Order{
		UserUUID:        &customer.UUID,
		DeliveryAddress: "12 Green Road, Dhaka",
		PaymentMethod:   "cod",
		Products: []*models.OrderProduct{
			{ProductUUID: &orange.UUID, Quantity: 2, Price: 480, IsVatable: false},
			{ProductUUID: &lemon.UUID, Quantity: 6, Price: 90, IsVatable: false},
		},
	}
	require.NoError(t, orderRepo.Create(ctx, order))
	assert.Equal(t, models.OrderStatusPending, order.Status)

	got, err := orderRepo.GetByUUID(ctx, order.UUID)
	require.NoError(t, err)
	require.NotNil(t, got.UserName)
	assert.Equal(t, "Customer", *got.UserName)
	require.Len(t, got.Products, 2)
	names := []string{*got.Products[0].ProductName, *got.Products[1].ProductName}
	assert.ElementsMatch(t, []string{"Orange", "Lemon"}, names)

	// Line items are not attached on list lookups
	listed, err := orderRepo.List(ctx, query.ListParams{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].Products)

	// Line items can be amended after the order exists
	itemRepo := repositories.NewOrderProductRepository(testDB.DB)
	extra := &models.OrderProduct{
		OrderUUID:   &order.UUID,
		ProductUUID: &lemon.UUID,
		Quantity:    1,
		Price:       15,
	}
	require.NoError(t, itemRepo.Create(ctx, extra))
	assert.Len(t, extra.UUID, 21)

	item, err := itemRepo.GetByUUID(ctx, extra.UUID)
	require.NoError(t, err)
	require.NotNil(t, item.ProductName)
	assert.Equal(t, "Lemon", *item.ProductName)

	require.NoError(t, itemRepo.Update(ctx, extra.UUID, map[string]interface{}{"quantity": 4}))
	item, err = itemRepo.GetByUUID(ctx, extra.UUID)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)
	assert.NotNil(t, item.UpdatedAt)

	// An item pointing at a missing order is rejected by the schema
	missing := "missing-order-uuid-00"
	bad := &models.OrderProduct{OrderUUID: &missing, ProductUUID: &lemon.UUID, Quantity: 1, Price: 15}
	assert.ErrorIs(t, itemRepo.Create(ctx, bad), models.ErrBadRequest)

	require.NoError(t, itemRepo.Delete(ctx, extra.UUID))
	assert.ErrorIs(t, itemRepo.Delete(ctx, extra.UUID), models.ErrNotFound)

	// Deleting the order removes its line items through the cascade
	require.NoError(t, orderRepo.Delete(ctx, order.UUID))
	var count int
	require.NoError(t, testDB.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM portfolio.order_product`).Scan(&count))
	assert.Zero(t, count)
}

func TestContactMessageLifecycle(t *testing.T) {
	cleanup(t)
	ctx := context.Background()
	repo := repositories.NewContactRepository(testDB.DB)

	msg := &models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Phone:   "+8801700000000",
		Message: "Do you deliver to Chattogram?",
	}
	require.NoError(t, repo.Create(ctx, msg))
	assert.NotZero(t, msg.ID)

	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "visitor@example.com", got.Email)

	require.NoError(t, repo.Delete(ctx, msg.ID))
	_, err = repo.GetByID(ctx, msg.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
