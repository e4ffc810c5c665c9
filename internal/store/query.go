package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/volunteerhub/steward/pkg/types"
)

// Execute runs an effect statement (INSERT, UPDATE, DELETE, DDL) and reports
// the insert id and affected row count through cb.
func (s *Store) Execute(ctx context.Context, stmt string, params []any, cb types.ExecFunc) {
	cb(s.exec(ctx, stmt, params))
}

// QueryOne runs a fetch statement and reports the first matching row, or a
// nil row when nothing matched.
func (s *Store) QueryOne(ctx context.Context, stmt string, params []any, cb types.RowFunc) {
	rows, err := s.query(ctx, stmt, params)
	if err != nil {
		cb(nil, err)
		return
	}
	if len(rows) == 0 {
		cb(nil, nil)
		return
	}
	cb(rows[0], nil)
}

// QueryAll runs a fetch statement and reports every matching row in result
// order. The slice is empty, never nil, when nothing matched.
func (s *Store) QueryAll(ctx context.Context, stmt string, params []any, cb types.RowsFunc) {
	cb(s.query(ctx, stmt, params))
}

// ExecuteRaw runs an administrative statement without parameters. The
// statement takes the same translation path as everything else.
func (s *Store) ExecuteRaw(ctx context.Context, stmt string, cb types.ErrFunc) {
	_, err := s.exec(ctx, stmt, nil)
	cb(err)
}

// exec translates stmt and runs it through the pool.
func (s *Store) exec(ctx context.Context, stmt string, params []any) (types.ExecInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return types.ExecInfo{}, types.ErrStoreClosed
	}
	res, err := s.execLocked(ctx, s.translate(stmt), params...)
	if err != nil {
		return types.ExecInfo{}, err
	}
	// Drivers without insert-id or row-count support report zero.
	info := types.ExecInfo{}
	info.LastInsertID, _ = res.LastInsertId()
	info.RowsAffected, _ = res.RowsAffected()
	return info, nil
}

// query translates stmt, runs it through the pool, and scans every row into
// a column-keyed map.
func (s *Store) query(ctx context.Context, stmt string, params []any) ([]types.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}
	return s.queryLocked(ctx, s.translate(stmt), params...)
}

// execLocked runs an already-translated statement. The caller holds the read
// lock and has passed the closed check.
func (s *Store) execLocked(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("execute statement: %w", err)
	}
	return res, nil
}

// queryLocked runs an already-translated fetch statement and scans the
// result set. The caller holds the read lock and has passed the closed check.
func (s *Store) queryLocked(ctx context.Context, query string, args ...any) ([]types.Row, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query statement: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	out := make([]types.Row, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		row := make(types.Row, len(cols))
		for i, col := range cols {
			// MySQL reports text columns as []byte; normalize so both
			// engines hand callers strings.
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = vals[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating result rows: %w", err)
	}
	return out, nil
}

// countLocked runs a single-value COUNT query. The caller holds the read lock.
func (s *Store) countLocked(ctx context.Context, query string, args ...any) (int, error) {
	if err := s.acquire(ctx); err != nil {
		return 0, err
	}
	defer s.release()

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
