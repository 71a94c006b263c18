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

var promoBannerTable = query.Table{
	Name: "promo_banner",
	Columns: []string{
		"uuid", "name", "image", "discount_type", "discount",
		"start_datetime", "end_datetime", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

var promoBannerProductTable = query.Table{
	Name: "promo_banner_product",
	Columns: []string{
		"uuid", "promo_banner_uuid", "product_uuid", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const promoBannerColumns = `
	promo_banner.uuid, promo_banner.name, promo_banner.image,
	promo_banner.discount_type, promo_banner.discount,
	promo_banner.start_datetime, promo_banner.end_datetime,
	promo_banner.created_by, creator.name,
	promo_banner.created_at, promo_banner.updated_at, promo_banner.remarks`

const promoBannerFrom = `
	FROM portfolio.promo_banner
	LEFT JOIN hr.users AS creator ON creator.uuid = promo_banner.created_by`

type PromoBannerRepository struct {
	db *database.DB
}

func NewPromoBannerRepository(db *database.DB) *PromoBannerRepository {
	return &PromoBannerRepository{db: db}
}

func scanPromoBannerRow(scanner rowScanner) (*models.PromoBanner, error) {
	var b models.PromoBanner

	err := scanner.Scan(
		&b.UUID, &b.Name, &b.Image,
		&b.DiscountType, &b.Discount,
		&b.StartDatetime, &b.EndDatetime,
		&b.CreatedBy, &b.CreatedByName,
		&b.CreatedAt, &b.UpdatedAt, &b.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &b, nil
}

func (r *PromoBannerRepository) List(ctx context.Context, p query.ListParams) ([]*models.PromoBanner, error) {
	sql, args := query.NewBuilder(`SELECT `+promoBannerColumns+promoBannerFrom).
		Apply(promoBannerTable, p, query.Column{Table: "creator", Name: "name"}).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query promo banners: %w", err)
	}

	return collectRows(rows, scanPromoBannerRow)
}

func (r *PromoBannerRepository) GetByUUID(ctx context.Context, uuid string) (*models.PromoBanner, error) {
	sql := `SELECT ` + promoBannerColumns + promoBannerFrom + ` WHERE promo_banner.uuid = $1`

	return scanPromoBannerRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *PromoBannerRepository) Create(ctx context.Context, b *models.PromoBanner) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	b.UUID = id
	b.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.promo_banner (uuid, name, image, discount_type, discount, start_datetime, end_datetime, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		b.UUID, b.Name, b.Image, b.DiscountType, b.Discount,
		b.StartDatetime, b.EndDatetime,
		b.CreatedBy, b.CreatedAt, b.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *PromoBannerRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.promo_banner", "uuid", uuid, fields)
}

func (r *PromoBannerRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.promo_banner WHERE uuid = $1`, uuid)
}

const promoBannerProductColumns = `
	promo_banner_product.uuid,
	promo_banner_product.promo_banner_uuid, promo_banner.name,
	promo_banner_product.product_uuid, product.name,
	promo_banner_product.created_by,
	promo_banner_product.created_at, promo_banner_product.updated_at,
	promo_banner_product.remarks`

const promoBannerProductFrom = `
	FROM portfolio.promo_banner_product
	LEFT JOIN portfolio.promo_banner ON promo_banner.uuid = promo_banner_product.promo_banner_uuid
	LEFT JOIN portfolio.product ON product.uuid = promo_banner_product.product_uuid`

type PromoBannerProductRepository struct {
	db *database.DB
}

func NewPromoBannerProductRepository(db *database.DB) *PromoBannerProductRepository {
	return &PromoBannerProductRepository{db: db}
}

func scanPromoBannerProductRow(scanner rowScanner) (*models.PromoBannerProduct, error) {
	var b models.PromoBannerProduct

	err := scanner.Scan(
		&b.UUID,
		&b.PromoBannerUUID, &b.PromoBannerName,
		&b.ProductUUID, &b.ProductName,
		&b.CreatedBy,
		&b.CreatedAt, &b.UpdatedAt, &b.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &b, nil
}

func (r *PromoBannerProductRepository) List(ctx context.Context, p query.ListParams) ([]*models.PromoBannerProduct, error) {
	sql, args := query.NewBuilder(`SELECT `+promoBannerProductColumns+promoBannerProductFrom).
		Apply(promoBannerProductTable, p,
			query.Column{Table: "promo_banner", Name: "name"},
			query.Column{Table: "product", Name: "name"},
		).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query promo banner products: %w", err)
	}

	return collectRows(rows, scanPromoBannerProductRow)
}

func (r *PromoBannerProductRepository) GetByUUID(ctx context.Context, uuid string) (*models.PromoBannerProduct, error) {
	sql := `SELECT ` + promoBannerProductColumns + promoBannerProductFrom + ` WHERE promo_banner_product.uuid = $1`

	return scanPromoBannerProductRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *PromoBannerProductRepository) Create(ctx context.Context, b *models.PromoBannerProduct) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	b.UUID = id
	b.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.promo_banner_product (uuid, promo_banner_uuid, product_uuid, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		b.UUID, b.PromoBannerUUID, b.ProductUUID, b.CreatedBy, b.CreatedAt, b.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *PromoBannerProductRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.promo_banner_product", "uuid", uuid, fields)
}

func (r *PromoBannerProductRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.promo_banner_product WHERE uuid = $1`, uuid)
}
