// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// Filtered reads and partial updates are composed by package query.
// Every error leaving this package has been translated by sqlerr.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/Nishaantmazarallo/Mini-project/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx shared by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.CollectableRow.
type scanner interface {
	Scan(dest ...any) error
}

// recentWindow is the trailing window used by the "recent" stats counters.
const recentWindow = "7 days"

func queryRows[T any](ctx context.Context, db DBTX, scan func(scanner) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}

func queryOne[T any](ctx context.Context, db DBTX, scan func(scanner) (T, error), sql string, args ...any) (*T, error) {
	v, err := scan(db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func countRows(ctx context.Context, db DBTX, sql string, args ...any) (int64, error) {
	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// exec runs a write and reports the number of affected rows.
func exec(ctx context.Context, db DBTX, sql string, args ...any) (int64, error) {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// groupCounts runs "SELECT key, COUNT(*) ... GROUP BY key" style queries.
func groupCounts[K comparable](ctx context.Context, db DBTX, sql string, args ...any) (map[K]int64, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[K]int64)
	for rows.Next() {
		var (
			key K
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}

// table bundles the generic list, count, find, update and delete paths of
// one entity so each repository only spells out what differs.
type table[T any] struct {
	db     DBTX
	entity string
	def    query.Table
	scan   func(scanner) (T, error)
}

func (t *table[T]) list(ctx context.Context, op string, where *query.Conditions, page query.Page) ([]T, error) {
	sql, args, err := t.def.Select(where, page)
	if err != nil {
		return nil, sqlerr.HandleError(err, t.entity, op)
	}
	items, err := queryRows(ctx, t.db, t.scan, sql, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err, t.entity, op)
	}
	return items, nil
}

func (t *table[T]) count(ctx context.Context, op string, where *query.Conditions) (int64, error) {
	sql, args, err := t.def.Count(where)
	if err != nil {
		return 0, sqlerr.HandleError(err, t.entity, op)
	}
	n, err := countRows(ctx, t.db, sql, args...)
	if err != nil {
		return 0, sqlerr.HandleError(err, t.entity, op)
	}
	return n, nil
}

func (t *table[T]) sample(ctx context.Context, op string, where *query.Conditions, limit int) ([]T, error) {
	sql, args, err := t.def.Sample(where, limit)
	if err != nil {
		return nil, sqlerr.HandleError(err, t.entity, op)
	}
	items, err := queryRows(ctx, t.db, t.scan, sql, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err, t.entity, op)
	}
	return items, nil
}

func (t *table[T]) findByID(ctx context.Context, id int64) (*T, error) {
	sql, args, err := t.def.FindByID(id)
	if err != nil {
		return nil, sqlerr.HandleError(err, t.entity, "find")
	}
	item, err := queryOne(ctx, t.db, t.scan, sql, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err, t.entity, "find")
	}
	return item, nil
}

// update applies changes to row id. Nothing is sent to the database when
// changes is empty and the reported count is 0.
func (t *table[T]) update(ctx context.Context, op string, id int64, changes *query.Changes) (int64, error) {
	sql, args, err := t.def.Update(id, changes)
	if errors.Is(err, query.ErrNoChanges) {
		return 0, nil
	}
	if err != nil {
		return 0, sqlerr.HandleError(err, t.entity, op)
	}
	n, err := exec(ctx, t.db, sql, args...)
	if err != nil {
		return 0, sqlerr.HandleError(err, t.entity, op)
	}
	return n, nil
}

func (t *table[T]) exec(ctx context.Context, op, sql string, args ...any) (int64, error) {
	n, err := exec(ctx, t.db, sql, args...)
	if err != nil {
		return 0, sqlerr.HandleError(err, t.entity, op)
	}
	return n, nil
}

func (t *table[T]) delete(ctx context.Context, id int64) (int64, error) {
	return t.exec(ctx, "delete", "DELETE FROM "+t.def.Name+" WHERE id = $1", id)
}

func (t *table[T]) insert(ctx context.Context, sql string, args ...any) (*T, error) {
	item, err := queryOne(ctx, t.db, t.scan, sql, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err, t.entity, "create")
	}
	return item, nil
}

func columns(t query.Table) string {
	return strings.Join(t.Columns, ", ")
}
