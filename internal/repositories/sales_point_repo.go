package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/mahin-rahman/greenbasket/internal/database"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
	"github.com/mahin-rahman/greenbasket/pkg/nanoid"
)

var salesPointTable = query.Table{
	Name: "sales_point",
	Columns: []string{
		"id", "uuid", "shop_uuid", "name", "phone", "details",
		"latitude", "longitude", "address", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

var productSalePointTable = query.Table{
	Name: "product_sale_point",
	Columns: []string{
		"uuid", "product_uuid", "sales_point_uuid", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const salesPointColumns = `
	sales_point.id, sales_point.uuid,
	sales_point.shop_uuid, shop.name,
	sales_point.name, sales_point.phone, sales_point.details,
	sales_point.latitude, sales_point.longitude, sales_point.address,
	sales_point.created_by, creator.name,
	sales_point.created_at, sales_point.updated_at, sales_point.remarks`

const salesPointFrom = `
	FROM portfolio.sales_point
	LEFT JOIN portfolio.shop ON shop.uuid = sales_point.shop_uuid
	LEFT JOIN hr.users AS creator ON creator.uuid = sales_point.created_by`

type SalesPointRepository struct {
	db *database.DB
}

func NewSalesPointRepository(db *database.DB) *SalesPointRepository {
	return &SalesPointRepository{db: db}
}

func scanSalesPointRow(scanner rowScanner) (*models.SalesPoint, error) {
	var s models.SalesPoint

	err := scanner.Scan(
		&s.ID, &s.UUID,
		&s.ShopUUID, &s.ShopName,
		&s.Name, &s.Phone, &s.Details,
		&s.Latitude, &s.Longitude, &s.Address,
		&s.CreatedBy, &s.CreatedByName,
		&s.CreatedAt, &s.UpdatedAt, &s.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &s, nil
}

func (r *SalesPointRepository) List(ctx context.Context, p query.ListParams) ([]*models.SalesPoint, error) {
	sql, args := query.NewBuilder(`SELECT `+salesPointColumns+salesPointFrom).
		Apply(salesPointTable, p,
			query.Column{Table: "shop", Name: "name"},
			query.Column{Table: "creator", Name: "name"},
		).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales points: %w", err)
	}

	return collectRows(rows, scanSalesPointRow)
}

func (r *SalesPointRepository) GetByUUID(ctx context.Context, uuid string) (*models.SalesPoint, error) {
	sql := `SELECT ` + salesPointColumns + salesPointFrom + ` WHERE sales_point.uuid = $1`

	return scanSalesPointRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *SalesPointRepository) Create(ctx context.Context, s *models.SalesPoint) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	s.UUID = id
	s.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.sales_point (uuid, shop_uuid, name, phone, details, latitude, longitude, address, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		s.UUID, s.ShopUUID, s.Name, s.Phone, s.Details,
		s.Latitude, s.Longitude, s.Address,
		s.CreatedBy, s.CreatedAt, s.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *SalesPointRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.sales_point", "uuid", uuid, fields)
}

func (r *SalesPointRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.sales_point WHERE uuid = $1`, uuid)
}

const productSalePointColumns = `
	product_sale_point.uuid,
	product_sale_point.product_uuid, product.name,
	product_sale_point.sales_point_uuid, sales_point.name,
	product_sale_point.created_by,
	product_sale_point.created_at, product_sale_point.updated_at,
	product_sale_point.remarks`

const productSalePointFrom = `
	FROM portfolio.product_sale_point
	LEFT JOIN portfolio.product ON product.uuid = product_sale_point.product_uuid
	LEFT JOIN portfolio.sales_point ON sales_point.uuid = product_sale_point.sales_point_uuid`

type ProductSalePointRepository struct {
	db *database.DB
}

func NewProductSalePointRepository(db *database.DB) *ProductSalePointRepository {
	return &ProductSalePointRepository{db: db}
}

func scanProductSalePointRow(scanner rowScanner) (*models.ProductSalePoint, error) {
	var s models.ProductSalePoint

	err := scanner.Scan(
		&s.UUID,
		&s.ProductUUID, &s.ProductName,
		&s.SalesPointUUID, &s.SalesPointName,
		&s.CreatedBy,
		&s.CreatedAt, &s.UpdatedAt, &s.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &s, nil
}

func (r *ProductSalePointRepository) List(ctx context.Context, p query.ListParams) ([]*models.ProductSalePoint, error) {
	sql, args := query.NewBuilder(`SELECT `+productSalePointColumns+productSalePointFrom).
		Apply(productSalePointTable, p,
			query.Column{Table: "product", Name: "name"},
			query.Column{Table: "sales_point", Name: "name"},
		).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query product sale points: %w", err)
	}

	return collectRows(rows, scanProductSalePointRow)
}

func (r *ProductSalePointRepository) GetByUUID(ctx context.Context, uuid string) (*models.ProductSalePoint, error) {
	sql := `SELECT ` + productSalePointColumns + productSalePointFrom + ` WHERE product_sale_point.uuid = $1`

	return scanProductSalePointRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *ProductSalePointRepository) Create(ctx context.Context, s *models.ProductSalePoint) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	s.UUID = id
	s.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.product_sale_point (uuid, product_uuid, sales_point_uuid, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		s.UUID, s.ProductUUID, s.SalesPointUUID, s.CreatedBy, s.CreatedAt, s.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *ProductSalePointRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.product_sale_point", "uuid", uuid, fields)
}

func (r *ProductSalePointRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.product_sale_point WHERE uuid = $1`, uuid)
}
