// Package query turns generic list requests (free-text search, sort,
// pagination) into deterministic, parameterized SQL. Predicates are
// accumulated explicitly and AND-combined at render time, so caller
// filters and search terms can never overwrite each other.
package query

import (
	"fmt"
	"strings"
)

// MaxLimit caps the page size to keep pathological requests from scanning
// the whole table.
const MaxLimit = 100

// Column is a column reference qualified by its owning table.
type Column struct {
	Table string
	Name  string
}

func (c Column) qualified() string {
	return fmt.Sprintf("%q.%q", c.Table, c.Name)
}

// Table declares the queryable surface of a resource: its bare table name
// (without schema), the full declared column set, and the default sort
// column. Sort requests are validated against Columns; free-text search
// uses Columns minus the fixed exclusion rules.
type Table struct {
	Name        string
	Columns     []string
	DefaultSort string
}

// Columns never eligible for free-text search: identifiers, audit
// timestamps, file/image paths and non-text columns that LOWER() cannot
// take.
var excludedSearchColumns = map[string]bool{
	"id":             true,
	"uuid":           true,
	"created_at":     true,
	"updated_at":     true,
	"created_by":     true,
	"pass":           true,
	"status":         true,
	"type":           true,
	"image":          true,
	"file":           true,
	"cover_image":    true,
	"documents":      true,
	"price":          true,
	"quantity":       true,
	"start_datetime": true,
	"end_datetime":   true,
}

func searchableColumn(name string) bool {
	if excludedSearchColumns[name] {
		return false
	}
	if strings.HasPrefix(name, "is_") {
		return false
	}
	if strings.HasSuffix(name, "_uuid") {
		return false
	}
	return true
}

// SearchColumns returns the table's eligible free-text search columns.
func (t Table) SearchColumns() []Column {
	cols := make([]Column, 0, len(t.Columns))
	for _, name := range t.Columns {
		if searchableColumn(name) {
			cols = append(cols, Column{Table: t.Name, Name: name})
		}
	}
	return cols
}

func (t Table) hasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Builder composes WHERE, ORDER BY, LIMIT and OFFSET clauses onto a base
// SELECT. The base statement and all predicates use ? placeholders, which
// are renumbered into $1..$n when the query is rendered. The base must not
// contain its own WHERE clause; caller filters go through Where.
type Builder struct {
	base    string
	args    []interface{}
	conds   []string
	orderBy string
	limit   int
	offset  int
}

// NewBuilder starts a builder from a base SELECT and its args.
func NewBuilder(base string, args ...interface{}) *Builder {
	return &Builder{
		base:   base,
		args:   args,
		limit:  -1,
		offset: -1,
	}
}

// Where appends a predicate. All predicates are AND-combined.
func (b *Builder) Where(cond string, args ...interface{}) *Builder {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
	return b
}

// Apply composes free-text search, sorting and pagination from p onto the
// query. extra lists whitelisted columns from joined tables that also
// participate in search.
func (b *Builder) Apply(t Table, p ListParams, extra ...Column) *Builder {
	b.applySearch(t, p, extra)
	b.applySort(t, p)
	b.applyPagination(p)
	return b
}

func (b *Builder) applySearch(t Table, p ListParams, extra []Column) {
	if p.Query == "" {
		return
	}

	cols := append(t.SearchColumns(), extra...)
	if len(cols) == 0 {
		// Nothing eligible to match against: skip filtering, not an error
		return
	}

	pattern := "%" + p.Query + "%"
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		parts = append(parts, fmt.Sprintf("LOWER(%s::text) LIKE LOWER(?)", col.qualified()))
		b.args = append(b.args, pattern)
	}

	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
}

func (b *Builder) applySort(t Table, p ListParams) {
	sortCol := t.DefaultSort
	direction := "DESC"

	// A sort column outside the declared set falls back to the default
	// instead of reaching the database
	if p.Sort != "" && t.hasColumn(p.Sort) {
		sortCol = p.Sort
		if p.OrderBy == "asc" {
			direction = "ASC"
		}
	}

	col := Column{Table: t.Name, Name: sortCol}
	b.orderBy = fmt.Sprintf("%s %s", col.qualified(), direction)
}

func (b *Builder) applyPagination(p ListParams) {
	if p.Page == 0 || p.Limit == 0 {
		return
	}

	limit := p.Limit
	if limit > MaxLimit {
		limit = MaxLimit
	}

	b.limit = limit
	b.offset = (p.Page - 1) * limit
}

// SQL renders the final statement and its positional args.
func (b *Builder) SQL() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(b.base)

	if len(b.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conds, " AND "))
	}
	if b.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderBy)
	}
	if b.limit >= 0 {
		fmt.Fprintf(&sb, " LIMIT %d OFFSET %d", b.limit, b.offset)
	}

	return numberPlaceholders(sb.String()), b.args
}

// numberPlaceholders rewrites ? placeholders into $1..$n in order. The
// builder never embeds literal question marks inside quoted strings.
func numberPlaceholders(sql string) string {
	var sb strings.Builder
	n := 0
	for _, r := range sql {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
