// Package repositories holds the pgx data access layer. Each resource
// declares its queryable column surface as a query.Table; list methods
// compose search, sort and pagination through the query builder.
package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mahin-rahman/greenbasket/internal/database"
	"github.com/mahin-rahman/greenbasket/internal/models"
)

// rowScanner abstracts pgx.Row and pgx.Rows for shared scan functions.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// collectRows drains rows through a row scan function.
func collectRows[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]*T, error) {
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// updateQuery renders a partial UPDATE from a column->value set. Column
// names come from handler-owned field maps, never from request input.
// Columns are ordered by name so the rendered SQL is deterministic.
func updateQuery(table, keyCol string, fields map[string]interface{}) (string, []interface{}) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, 0, len(names))
	args := make([]interface{}, 0, len(names)+1)
	for i, name := range names {
		sets = append(sets, fmt.Sprintf("%s = $%d", name, i+1))
		args = append(args, fields[name])
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(sets, ", "), keyCol, len(args)+1)
	return query, args
}

// execExpectRow runs a statement that must touch at least one row.
func execExpectRow(ctx context.Context, db *database.DB, query string, args ...interface{}) error {
	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return database.MapPostgresError(err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// updateFields applies a partial update keyed by keyCol, stamping
// updated_at. Zero affected rows maps to ErrNotFound.
func updateFields(ctx context.Context, db *database.DB, table, keyCol string, key interface{}, fields map[string]interface{}) error {
	fields["updated_at"] = models.NewDateTime(time.Now())

	query, args := updateQuery(table, keyCol, fields)
	args = append(args, key)

	return execExpectRow(ctx, db, query, args...)
}
