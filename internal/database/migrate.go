package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/mahin-rahman/greenbasket/migrations"
)

// Migrate applies the embedded goose migrations through a database/sql
// connection derived from the pgx pool config.
func (db *DB) Migrate(logger *slog.Logger) error {
	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer func() {
		_ = sqlDB.Close()
	}()

	if err := runGoose(sqlDB); err != nil {
		return err
	}

	logger.Info("database migrations applied")
	return nil
}

func runGoose(sqlDB *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
