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

var shopTable = query.Table{
	Name: "shop",
	Columns: []string{
		"id", "uuid", "name", "address", "image", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const shopColumns = `
	shop.id, shop.uuid, shop.name, shop.address, shop.image,
	shop.created_by, creator.name,
	shop.created_at, shop.updated_at, shop.remarks`

const shopFrom = `
	FROM portfolio.shop
	LEFT JOIN hr.users AS creator ON creator.uuid = shop.created_by`

type ShopRepository struct {
	db *database.DB
}

func NewShopRepository(db *database.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

func scanShopRow(scanner rowScanner) (*models.Shop, error) {
	var s models.Shop

	err := scanner.Scan(
		&s.ID, &s.UUID, &s.Name, &s.Address, &s.Image,
		&s.CreatedBy, &s.CreatedByName,
		&s.CreatedAt, &s.UpdatedAt, &s.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &s, nil
}

func (r *ShopRepository) List(ctx context.Context, p query.ListParams) ([]*models.Shop, error) {
	sql, args := query.NewBuilder(`SELECT `+shopColumns+shopFrom).
		Apply(shopTable, p, query.Column{Table: "creator", Name: "name"}).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}

	return collectRows(rows, scanShopRow)
}

func (r *ShopRepository) GetByUUID(ctx context.Context, uuid string) (*models.Shop, error) {
	sql := `SELECT ` + shopColumns + shopFrom + ` WHERE shop.uuid = $1`

	return scanShopRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *ShopRepository) Create(ctx context.Context, s *models.Shop) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	s.UUID = id
	s.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.shop (uuid, name, address, image, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		s.UUID, s.Name, s.Address, s.Image, s.CreatedBy, s.CreatedAt, s.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *ShopRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.shop", "uuid", uuid, fields)
}

func (r *ShopRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.shop WHERE uuid = $1`, uuid)
}
