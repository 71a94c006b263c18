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

var usersTable = query.Table{
	Name: "users",
	Columns: []string{
		"id", "uuid", "name", "email", "pass", "phone", "address", "gender",
		"type", "status", "can_access", "provider",
		"created_at", "updated_at", "remarks",
	},
	DefaultSort: "created_at",
}

const userColumns = `
	users.id, users.uuid, users.name, users.email, users.pass,
	users.phone, users.address, users.gender, users.type, users.status,
	users.can_access, users.provider,
	users.created_at, users.updated_at, users.remarks`

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUserRow(scanner rowScanner) (*models.User, error) {
	var user models.User

	err := scanner.Scan(
		&user.ID, &user.UUID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Phone, &user.Address, &user.Gender, &user.Type, &user.Status,
		&user.CanAccess, &user.Provider,
		&user.CreatedAt, &user.UpdatedAt, &user.Remarks,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, p query.ListParams) ([]*models.User, error) {
	sql, args := query.NewBuilder(`SELECT `+userColumns+` FROM hr.users`).
		Apply(usersTable, p).
		SQL()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return collectRows(rows, scanUserRow)
}

func (r *UserRepository) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	sql := `SELECT ` + userColumns + ` FROM hr.users WHERE users.uuid = $1`

	return scanUserRow(r.db.Pool.QueryRow(ctx, sql, uuid))
}

// GetByEmail is the sign-in lookup; the returned record includes the
// password hash for bcrypt comparison.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql := `SELECT ` + userColumns + ` FROM hr.users WHERE users.email = $1`

	return scanUserRow(r.db.Pool.QueryRow(ctx, sql, email))
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	id, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	user.UUID = id
	user.CreatedAt = models.NewDateTime(time.Now())

	if user.Type == "" {
		user.Type = models.UserTypeClient
	}
	if user.Provider == "" {
		user.Provider = models.ProviderLocal
	}

	sql := `
		INSERT INTO hr.users (uuid, name, email, pass, phone, address, gender, type, status, can_access, provider, created_at, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.db.Pool.Exec(ctx, sql,
		user.UUID, user.Name, user.Email, user.PasswordHash,
		user.Phone, user.Address, user.Gender, user.Type, user.Status,
		user.CanAccess, user.Provider, user.CreatedAt, user.Remarks,
	)
	return database.MapPostgresError(err)
}

func (r *UserRepository) Update(ctx context.Context, uuid string, fields map[string]interface{}) error {
	return updateFields(ctx, r.db, "hr.users", "uuid", uuid, fields)
}

// UpdatePassword replaces the stored hash and stamps updated_at. An
// unknown uuid maps to ErrNotFound.
func (r *UserRepository) UpdatePassword(ctx context.Context, uuid, passwordHash string) error {
	return updateFields(ctx, r.db, "hr.users", "uuid", uuid, map[string]interface{}{
		"pass": passwordHash,
	})
}

func (r *UserRepository) Delete(ctx context.Context, uuid string) error {
	return execExpectRow(ctx, r.db, `DELETE FROM hr.users WHERE uuid = $1`, uuid)
}
