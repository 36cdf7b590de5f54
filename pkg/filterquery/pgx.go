package filterquery

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgx.Conn, *pgxpool.Pool and pgx.Tx the Postgres
// executors need. The caller owns its lifecycle.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Row is a single result row positioned for scanning.
type Row interface {
	Scan(dest ...any) error
}

// Load runs q and scans every matching row.
func Load[T any](ctx context.Context, db DBTX, q *Query, scan func(Row) (T, error)) ([]T, error) {
	query, args := q.SQL()
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, backendError("load", q, err)
	}

	items, err := pgx.CollectRows[T](rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
	if err != nil {
		return nil, backendError("load", q, err)
	}
	return items, nil
}

// Count returns the number of rows matching q's predicates, ignoring its
// page window.
func Count(ctx context.Context, db DBTX, q *Query) (int64, error) {
	query, args := q.CountSQL()

	var total int64
	if err := db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, backendError("count", q, err)
	}
	return total, nil
}

// LoadAndCount counts every row matching q's predicates, ignoring its page
// window, then loads the page itself.
func LoadAndCount[T any](ctx context.Context, db DBTX, q *Query, scan func(Row) (T, error)) ([]T, int64, error) {
	total, err := Count(ctx, db, q)
	if err != nil {
		return nil, 0, err
	}

	items, err := Load(ctx, db, q, scan)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
