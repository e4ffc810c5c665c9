// Unit tests for the MySQL execution path: dialect translation at the point
// of execution and result mapping, asserted against a mock driver.
package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteerhub/steward/pkg/types"
)

// newMockStore wires a sqlmock driver behind a MySQL-dialect store so tests
// can assert on the exact SQL text that reaches the driver.
func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	cfg := types.Config{
		Driver:   types.DriverMySQL,
		Host:     "db.internal",
		Database: "volunteers",
	}.Normalize()
	s := newStore(cfg, db, zerolog.Nop())
	t.Cleanup(func() { s.Close() })
	return s, mock
}

func TestExecuteTranslatesBeforeSubmission(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("CREATE TABLE t (id INT PRIMARY KEY AUTO_INCREMENT, score DOUBLE)").
		WillReturnResult(sqlmock.NewResult(0, 0))

	s.Execute(context.Background(),
		"CREATE TABLE t (id INTEGER PRIMARY KEY AUTOINCREMENT, score REAL)", nil,
		func(info types.ExecInfo, err error) { require.NoError(t, err) })

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteMapsDriverResult(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO volunteers (email) VALUES (?)").
		WithArgs("ana@example.org").
		WillReturnResult(sqlmock.NewResult(42, 1))

	s.Execute(context.Background(),
		"INSERT INTO volunteers (email) VALUES (?)", []any{"ana@example.org"},
		func(info types.ExecInfo, err error) {
			require.NoError(t, err)
			assert.Equal(t, int64(42), info.LastInsertID)
			assert.Equal(t, int64(1), info.RowsAffected)
		})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPragmaBecomesSingleRowQuery(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	s.QueryOne(context.Background(), "PRAGMA table_info(volunteers)", nil,
		func(row types.Row, err error) {
			require.NoError(t, err)
			require.NotNil(t, row)
		})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryAllNormalizesByteColumns(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT full_name FROM volunteers").
		WillReturnRows(sqlmock.NewRows([]string{"full_name"}).AddRow([]byte("Ana")))

	s.QueryAll(context.Background(), "SELECT full_name FROM volunteers", nil,
		func(rows []types.Row, err error) {
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, "Ana", rows[0]["full_name"])
		})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLDSN(t *testing.T) {
	cfg := types.Config{
		Driver:   types.DriverMySQL,
		Host:     "db.internal",
		Port:     3307,
		User:     "steward",
		Password: "pa:ss@word",
		Database: "volunteers",
	}
	dsn := mysqlDSN(cfg)
	assert.Contains(t, dsn, "tcp(db.internal:3307)")
	assert.Contains(t, dsn, "/volunteers")
	assert.Contains(t, dsn, "steward:")
}
