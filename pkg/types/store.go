package types

import (
	"context"
	"errors"
)

// Row is a single result row keyed by column name.
type Row map[string]any

// ExecInfo reports the outcome of an effect statement (INSERT, UPDATE,
// DELETE, DDL). LastInsertID is zero when the driver has nothing to report.
type ExecInfo struct {
	LastInsertID int64
	RowsAffected int64
}

// Callback signatures for the Store operations. Every operation reports its
// outcome through its callback; none of them fails synchronously.
type (
	// ExecFunc receives the effect-statement outcome.
	ExecFunc func(info ExecInfo, err error)
	// RowFunc receives the first matching row, or a nil Row when nothing
	// matched.
	RowFunc func(row Row, err error)
	// RowsFunc receives all matching rows in result order. The slice is
	// empty, never nil, when nothing matched.
	RowsFunc func(rows []Row, err error)
	// ErrFunc receives only an error slot.
	ErrFunc func(err error)
)

// Store defines the backend-independent query interface used by all callers.
// Statements are written in SQLite surface syntax; the store translates them
// to the backing engine's dialect before execution. Connections are pooled
// per statement: acquired, used, and released inside a single call.
type Store interface {
	// Execute runs an effect statement and reports insert id and affected
	// row count.
	Execute(ctx context.Context, stmt string, params []any, cb ExecFunc)

	// QueryOne runs a fetch statement and reports the first row, or nil
	// when no row matched.
	QueryOne(ctx context.Context, stmt string, params []any, cb RowFunc)

	// QueryAll runs a fetch statement and reports every matching row.
	QueryAll(ctx context.Context, stmt string, params []any, cb RowsFunc)

	// ExecuteRaw runs an administrative statement without parameters. The
	// statement still passes through dialect translation.
	ExecuteRaw(ctx context.Context, stmt string, cb ErrFunc)

	// Initialize creates every schema table that does not yet exist and
	// seeds the organization settings row on first boot. Safe to call
	// repeatedly; per-table failures are reported in the InitReport, not
	// returned as an error.
	Initialize(ctx context.Context) (InitReport, error)

	// Close releases every pooled connection. Idempotent; operations after
	// Close report ErrStoreClosed through their callback.
	Close() error
}

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrPoolBusy    = errors.New("connection pool is busy")
)
