package query

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// ErrNoChanges is returned by Table.Update when there is nothing to assign.
// Repositories translate it into a zero change count without a round trip.
var ErrNoChanges = errors.New("query: no changes to apply")

// Table describes how one entity is stored.
type Table struct {
	// Name is the table name.
	Name string

	// Columns is the select list, in scan order.
	Columns []string

	// SearchColumns are the text columns matched by a free-text search.
	SearchColumns []string

	// RecencyColumn orders list results, newest first.
	RecencyColumn string
}

func (t Table) recency() string {
	if t.RecencyColumn == "" {
		return "created_at"
	}
	return t.RecencyColumn
}

// Select renders the filtered, paginated list query:
//
//	SELECT <columns> FROM <name> [WHERE ...] ORDER BY <recency> DESC, id DESC LIMIT n OFFSET m
func (t Table) Select(where *Conditions, page Page) (string, []any, error) {
	if err := page.Validate(); err != nil {
		return "", nil, err
	}
	b := psql.Select(t.Columns...).From(t.Name)
	b = where.apply(b)
	b = b.OrderBy(t.recency()+" DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	return b.ToSql()
}

// Count renders "SELECT COUNT(*) FROM <name> [WHERE ...]" over the same
// predicates a Select would use.
func (t Table) Count(where *Conditions) (string, []any, error) {
	b := psql.Select("COUNT(*)").From(t.Name)
	return where.apply(b).ToSql()
}

// Sample renders a uniformly random selection of at most limit rows.
func (t Table) Sample(where *Conditions, limit int) (string, []any, error) {
	if limit <= 0 {
		return "", nil, Page{Limit: limit}.Validate()
	}
	b := psql.Select(t.Columns...).From(t.Name)
	b = where.apply(b)
	return b.OrderBy("random()").Limit(uint64(limit)).ToSql()
}

// FindByID renders "SELECT <columns> FROM <name> WHERE id = $1".
func (t Table) FindByID(id int64) (string, []any, error) {
	return psql.Select(t.Columns...).From(t.Name).Where(sq.Eq{"id": id}).ToSql()
}

// Update renders the partial update of the row with the given id:
//
//	UPDATE <name> SET a = $1, b = $2, updated_at = now() WHERE id = $3
//
// The timestamp is always assigned last and the key always bound last.
// ErrNoChanges is returned when changes is empty.
func (t Table) Update(id int64, changes *Changes) (string, []any, error) {
	if changes.Empty() {
		return "", nil, ErrNoChanges
	}
	b := psql.Update(t.Name)
	for _, a := range changes.sets {
		if a.column == "updated_at" || a.column == "id" {
			return "", nil, fmt.Errorf("query: column %q cannot be assigned", a.column)
		}
		b = b.Set(a.column, a.value)
	}
	return b.Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
}
