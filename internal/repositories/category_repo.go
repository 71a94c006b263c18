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

var productCategoryTable = query.Table{
	Name: "product_category",
	Columns: []string{
		"id", "uuid", "name", "image", "status", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

var productSubCategoryTable = query.Table{
	Name: "product_sub_category",
	Columns: []string{
		"id", "uuid", "product_category_uuid", "name", "image", "status",
		"created_by", "created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

type ProductCategoryRepository struct {
	db *database.DB
}

func NewProductCategoryRepository(db *database.DB) *ProductCategoryRepository {
	return &ProductCategoryRepository{db: db}
}

const productCategoryColumns = `
	product_category.id, product_category.uuid, product_category.name,
	product_category.image, product_category.status,
	product_category.created_by, creator.name,
	product_category.created_at, product_category.updated_at,
	product_category.remarks`

const productCategoryFrom = `
	FROM portfolio.product_category
	LEFT JOIN hr.users AS creator ON creator.uuid = product_category.created_by`

func scanProductCategoryRow(scanner rowScanner) (*models.ProductCategory, error) {
	var c models.ProductCategory

	err := scanner.Scan(
		&c.ID, &c.UUID, &c.Name, &c.Image, &c.Status,
		&c.CreatedBy, &c.CreatedByName,
		&c.CreatedAt, &c.UpdatedAt, &c.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &c, nil
}

func (r *ProductCategoryRepository) List(ctx context.Context, p query.ListParams) ([]*models.ProductCategory, error) {
	sql, args := query.NewBuilder(`SELECT `+productCategoryColumns+productCategoryFrom).
		Apply(productCategoryTable, p, query.Column{Table: "creator", Name: "name"}).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query product categories: %w", err)
	}

	return collectRows(rows, scanProductCategoryRow)
}

func (r *ProductCategoryRepository) GetByUUID(ctx context.Context, uuid string) (*models.ProductCategory, error) {
	sql := `SELECT ` + productCategoryColumns + productCategoryFrom + ` WHERE product_category.uuid = $1`

	return scanProductCategoryRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *ProductCategoryRepository) Create(ctx context.Context, c *models.ProductCategory) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	c.UUID = id
	c.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.product_category (uuid, name, image, status, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		c.UUID, c.Name, c.Image, c.Status, c.CreatedBy, c.CreatedAt, c.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *ProductCategoryRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.product_category", "uuid", uuid, fields)
}

func (r *ProductCategoryRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.product_category WHERE uuid = $1`, uuid)
}

type ProductSubCategoryRepository struct {
	db *database.DB
}

func NewProductSubCategoryRepository(db *database.DB) *ProductSubCategoryRepository {
	return &ProductSubCategoryRepository{db: db}
}

const productSubCategoryColumns = `
	product_sub_category.id, product_sub_category.uuid,
	product_sub_category.product_category_uuid, product_category.name,
	product_sub_category.name, product_sub_category.image,
	product_sub_category.status,
	product_sub_category.created_by, creator.name,
	product_sub_category.created_at, product_sub_category.updated_at,
	product_sub_category.remarks`

const productSubCategoryFrom = `
	FROM portfolio.product_sub_category
	LEFT JOIN portfolio.product_category ON product_category.uuid = product_sub_category.product_category_uuid
	LEFT JOIN hr.users AS creator ON creator.uuid = product_sub_category.created_by`

func scanProductSubCategoryRow(scanner rowScanner) (*models.ProductSubCategory, error) {
	var c models.ProductSubCategory

	err := scanner.Scan(
		&c.ID, &c.UUID,
		&c.ProductCategoryUUID, &c.ProductCategoryName,
		&c.Name, &c.Image, &c.Status,
		&c.CreatedBy, &c.CreatedByName,
		&c.CreatedAt, &c.UpdatedAt, &c.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &c, nil
}

func (r *ProductSubCategoryRepository) List(ctx context.Context, p query.ListParams) ([]*models.ProductSubCategory, error) {
	sql, args := query.NewBuilder(`SELECT `+productSubCategoryColumns+productSubCategoryFrom).
		Apply(productSubCategoryTable, p,
			query.Column{Table: "product_category", Name: "name"},
			query.Column{Table: "creator", Name: "name"},
		).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query product sub categories: %w", err)
	}

	return collectRows(rows, scanProductSubCategoryRow)
}

func (r *ProductSubCategoryRepository) GetByUUID(ctx context.Context, uuid string) (*models.ProductSubCategory, error) {
	sql := `SELECT ` + productSubCategoryColumns + productSubCategoryFrom + ` WHERE product_sub_category.uuid = $1`

	return scanProductSubCategoryRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *ProductSubCategoryRepository) Create(ctx context.Context, c *models.ProductSubCategory) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	c.UUID = id
	c.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.product_sub_category (uuid, product_category_uuid, name, image, status, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		c.UUID, c.ProductCategoryUUID, c.Name, c.Image, c.Status,
		c.CreatedBy, c.CreatedAt, c.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *ProductSubCategoryRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.product_sub_category", "uuid", uuid, fields)
}

func (r *ProductSubCategoryRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.product_sub_category WHERE uuid = $1`, uuid)
}
