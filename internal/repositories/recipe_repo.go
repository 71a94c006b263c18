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

var recipeTable = query.Table{
	Name: "recipe",
	Columns: []string{
		"uuid", "product_sub_category_uuid", "title", "youtube_url",
		"created_by", "created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const recipeColumns = `
	recipe.uuid,
	recipe.product_sub_category_uuid, product_sub_category.name,
	recipe.title, recipe.youtube_url,
	recipe.created_by,
	recipe.created_at, recipe.updated_at, recipe.remarks`

const recipeFrom = `
	FROM portfolio.recipe
	LEFT JOIN portfolio.product_sub_category ON product_sub_category.uuid = recipe.product_sub_category_uuid`

type RecipeRepository struct {
	db *database.DB
}

func NewRecipeRepository(db *database.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func scanRecipeRow(scanner rowScanner) (*models.Recipe, error) {
	var rec models.Recipe

	err := scanner.Scan(
		&rec.UUID,
		&rec.ProductSubCategoryUUID, &rec.ProductSubCategoryName,
		&rec.Title, &rec.YoutubeURL,
		&rec.CreatedBy,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &rec, nil
}

func (r *RecipeRepository) List(ctx context.Context, p query.ListParams) ([]*models.Recipe, error) {
	sql, args := query.NewBuilder(`SELECT `+recipeColumns+recipeFrom).
		Apply(recipeTable, p, query.Column{Table: "product_sub_category", Name: "name"}).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}

	return collectRows(rows, scanRecipeRow)
}

func (r *RecipeRepository) GetByUUID(ctx context.Context, uuid string) (*models.Recipe, error) {
	sql := `SELECT ` + recipeColumns + recipeFrom + ` WHERE recipe.uuid = $1`

	return scanRecipeRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *RecipeRepository) Create(ctx context.Context, rec *models.Recipe) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	rec.UUID = id
	rec.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.recipe (uuid, product_sub_category_uuid, title, youtube_url, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		rec.UUID, rec.ProductSubCategoryUUID, rec.Title, rec.YoutubeURL,
		rec.CreatedBy, rec.CreatedAt, rec.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *RecipeRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.recipe", "uuid", uuid, fields)
}

func (r *RecipeRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.recipe WHERE uuid = $1`, uuid)
}
