package filterquery

import (
	"context"
	"database/sql"
)

// SQLDB is the subset of *sql.DB, *sql.Conn and *sql.Tx the database/sql
// executors need.
type SQLDB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// LoadSQL runs q through database/sql and scans every matching row.
func LoadSQL[T any](ctx context.Context, db SQLDB, q *Query, scan func(Row) (T, error)) ([]T, error) {
	query, args := q.SQL()
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, backendError("load", q, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, backendError("load", q, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, backendError("load", q, err)
	}
	return items, nil
}

// LoadAndCountSQL is LoadAndCount for database/sql handles.
func LoadAndCountSQL[T any](ctx context.Context, db SQLDB, q *Query, scan func(Row) (T, error)) ([]T, int64, error) {
	countQuery, countArgs := q.CountSQL()

	var total int64
	if err := db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, backendError("count", q, err)
	}

	items, err := LoadSQL(ctx, db, q, scan)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
