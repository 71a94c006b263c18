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

var testimonialTable = query.Table{
	Name: "testimonial",
	Columns: []string{
		"uuid", "name", "description", "image", "created_by",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const testimonialColumns = `
	testimonial.uuid, testimonial.name, testimonial.description,
	testimonial.image,
	testimonial.created_by, creator.name,
	testimonial.created_at, testimonial.updated_at, testimonial.remarks`

const testimonialFrom = `
	FROM portfolio.testimonial
	LEFT JOIN hr.users AS creator ON creator.uuid = testimonial.created_by`

type TestimonialRepository struct {
	db *database.DB
}

func NewTestimonialRepository(db *database.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func scanTestimonialRow(scanner rowScanner) (*models.Testimonial, error) {
	var t models.Testimonial

	err := scanner.Scan(
		&t.UUID, &t.Name, &t.Description, &t.Image,
		&t.CreatedBy, &t.CreatedByName,
		&t.CreatedAt, &t.UpdatedAt, &t.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &t, nil
}

func (r *TestimonialRepository) List(ctx context.Context, p query.ListParams) ([]*models.Testimonial, error) {
	sql, args := query.NewBuilder(`SELECT `+testimonialColumns+testimonialFrom).
		Apply(testimonialTable, p, query.Column{Table: "creator", Name: "name"}).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}

	return collectRows(rows, scanTestimonialRow)
}

func (r *TestimonialRepository) GetByUUID(ctx context.Context, uuid string) (*models.Testimonial, error) {
	sql := `SELECT ` + testimonialColumns + testimonialFrom + ` WHERE testimonial.uuid = $1`

	return scanTestimonialRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	t.UUID = id
	t.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.testimonial (uuid, name, description, image, created_by, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		t.UUID, t.Name, t.Description, t.Image, t.CreatedBy, t.CreatedAt, t.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *TestimonialRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "portfolio.testimonial", "uuid", uuid, fields)
}

func (r *TestimonialRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.testimonial WHERE uuid = $1`, uuid)
}
