// Unit tests for store lifecycle and the callback query contract, run
// against a file-backed SQLite engine.
package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteerhub/steward/pkg/types"
)

// newTestStore opens a store over a temporary SQLite database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := types.Config{
		Driver:   types.DriverSQLite,
		Database: filepath.Join(t.TempDir(), "steward.db"),
		MaxConns: 4,
	}
	s, err := Open(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// newInitializedStore opens a store and runs schema initialization.
func newInitializedStore(t *testing.T) *Store {
	t.Helper()

	s := newTestStore(t)
	report, err := s.Initialize(context.Background())
	require.NoError(t, err)
	require.Empty(t, report.Failed())
	return s
}

func TestOpenValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     types.Config
		wantErr error
	}{
		{
			name:    "empty driver",
			cfg:     types.Config{Database: "x.db"},
			wantErr: types.ErrDriverEmpty,
		},
		{
			name:    "unknown driver",
			cfg:     types.Config{Driver: "mssql", Database: "x"},
			wantErr: types.ErrDriverUnknown,
		},
		{
			name:    "empty database",
			cfg:     types.Config{Driver: types.DriverSQLite},
			wantErr: types.ErrDatabaseEmpty,
		},
		{
			name:    "negative max conns",
			cfg:     types.Config{Driver: types.DriverSQLite, Database: "x.db", MaxConns: -1},
			wantErr: types.ErrMaxConnsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.cfg, zerolog.Nop())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigNormalizeDefaults(t *testing.T) {
	cfg := types.Config{Driver: types.DriverMySQL, Database: "volunteers"}.Normalize()
	assert.Equal(t, types.DefaultPort, cfg.Port)
	assert.Equal(t, types.DefaultMaxConns, cfg.MaxConns)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestOperationsAfterCloseReportStoreClosed(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())
	ctx := context.Background()

	s.Execute(ctx, "INSERT INTO volunteers (full_name) VALUES (?)", []any{"x"}, func(info types.ExecInfo, err error) {
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		assert.Zero(t, info)
	})
	s.QueryOne(ctx, "SELECT 1", nil, func(row types.Row, err error) {
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		assert.Nil(t, row)
	})
	s.QueryAll(ctx, "SELECT 1", nil, func(rows []types.Row, err error) {
		assert.ErrorIs(t, err, types.ErrStoreClosed)
		assert.Nil(t, rows)
	})
	s.ExecuteRaw(ctx, "SELECT 1", func(err error) {
		assert.ErrorIs(t, err, types.ErrStoreClosed)
	})

	_, err := s.Initialize(ctx)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestDialect(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, types.DriverSQLite, s.Dialect())
}
