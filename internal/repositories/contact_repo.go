package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/mahin-rahman/greenbasket/internal/database"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/query"
)

// contact_us is keyed by its serial id, not a uuid.
var contactTable = query.Table{
	Name: "contact_us",
	Columns: []string{
		"id", "name", "email", "phone", "message",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const contactColumns = `
	contact_us.id, contact_us.name, contact_us.email, contact_us.phone,
	contact_us.message,
	contact_us.created_at, contact_us.updated_at, contact_us.remarks`

type ContactRepository struct {
	db *database.DB
}

func NewContactRepository(db *database.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func scanContactRow(scanner rowScanner) (*models.ContactMessage, error) {
	var m models.ContactMessage

	err := scanner.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message,
		&m.CreatedAt, &m.UpdatedAt, &m.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &m, nil
}

func (r *ContactRepository) List(ctx context.Context, p query.ListParams) ([]*models.ContactMessage, error) {
	sql, args := query.NewBuilder(`SELECT ` + contactColumns + ` FROM portfolio.contact_us`).
		Apply(contactTable, p).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}

	return collectRows(rows, scanContactRow)
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*models.ContactMessage, error) {
	sql := `SELECT ` + contactColumns + ` FROM portfolio.contact_us WHERE contact_us.id = $1`

	return scanContactRow(r.db.Pool.QueryRow(ctx, sql, id))
}

func (r *ContactRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	m.CreatedAt = models.NewDateTime(time.Now())

	sql := `
		INSERT INTO portfolio.contact_us (name, email, phone, message, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, sql,
		m.Name, m.Email, m.Phone, m.Message, m.CreatedAt, m.Remarks,
	).Scan(&m.ID)
	return database.MapPostgresError(err)
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	return execExpectRow(ctx, r.db, `DELETE FROM portfolio.contact_us WHERE id = $1`, id)
}
