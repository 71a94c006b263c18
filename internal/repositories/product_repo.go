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

var productTable = query.Table{
	Name: "product",
	Columns: []string{
		"id", "uuid", "product_sub_category_uuid", "image", "name",
		"quantity", "unit", "price", "description", "nutrition",
		"is_published", "is_vatable", "is_featured", "is_popular",
		"is_variable_weight", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const productColumns = `
	product.id, product.uuid,
	product.product_sub_category_uuid, product_sub_category.name,
	product.image, product.name, product.quantity, product.unit,
	product.price, product.description, product.nutrition,
	product.is_published, product.is_vatable, product.is_featured,
	product.is_popular, product.is_variable_weight,
	product.created_by, creator.name,
	product.created_at, product.updated_at, product.remarks`

const productFrom = `
	FROM portfolio.product
	LEFT JOIN portfolio.product_sub_category ON product_sub_category.uuid = product.product_sub_category_uuid
	LEFT JOIN hr.users AS creator ON creator.uuid = product.created_by`

type ProductRepository struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProductRow(scanner rowScanner) (*models.Product, error) {
	var p models.Product

	err := scanner.Scan(
		&p.ID, &p.UUID,
		&p.ProductSubCategoryUUID, &p.ProductSubCategoryName,
		&p.Image, &p.Name, &p.Quantity, &p.Unit,
		&p.Price, &p.Description, &p.Nutrition,
		&p.IsPublished, &p.IsVatable, &p.IsFeatured,
		&p.IsPopular, &p.IsVariableWeight,
		&p.CreatedBy, &p.CreatedByName,
		&p.CreatedAt, &p.UpdatedAt, &p.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, p query.ListParams) ([]*models.Product, error) {
	sql, args := query.NewBuilder(`SELECT `+productColumns+productFrom).
		Apply(productTable, p,
			query.Column{Table: "product_sub_category", Name: "name"},
			query.Column{Table: "creator", Name: "name"},
		).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return collectRows(rows, scanProductRow)
}

func (r *ProductRepository) GetByUUID(ctx context.Context, uuid string) (*models.Product, error) {
	sql := `SELECT ` + productColumns + productFrom + ` WHERE product.uuid = $1`

	return scanProductRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	p.UUID = id
	p.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.product (
			uuid, product_sub_category_uuid, image, name, quantity, unit, price,
			description, nutrition, is_published, is_vatable, is_featured,
			is_popular, is_variable_weight, created_by, created_at, remarks
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		p.UUID, p.ProductSubCategoryUUID, p.Image, p.Name, p.Quantity, p.Unit,
		p.Price, p.Description, p.Nutrition, p.IsPublished, p.IsVatable,
		p.IsFeatured, p.IsPopular, p.IsVariableWeight,
		p.CreatedBy, p.CreatedAt, p.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *ProductRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.product", "uuid", uuid, fields)
}

func (r *ProductRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.product WHERE uuid = $1`, uuid)
}
