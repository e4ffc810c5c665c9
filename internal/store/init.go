package store

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/volunteerhub/steward/pkg/types"
)

// MySQL error numbers recognized during schema bootstrap.
const (
	mysqlErrTableExists = 1050
	mysqlErrDupKeyName  = 1061
	mysqlErrDupEntry    = 1062
)

// Initialize creates every schema table that does not yet exist, creates the
// secondary indexes, and seeds the organization settings row on first boot.
// Creation is best-effort: a failing table is logged and recorded in the
// report, and initialization continues with the next one. Statements run
// sequentially so startup logs stay deterministic and the backing store
// never sees MaxConns simultaneous DDL operations.
func (s *Store) Initialize(ctx context.Context) (types.InitReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return types.InitReport{}, types.ErrStoreClosed
	}

	report := types.InitReport{Tables: make([]types.TableResult, 0, len(schemaTables))}
	for _, td := range schemaTables {
		res := s.createTable(ctx, td)
		switch res.Status {
		case types.TableCreated:
			s.log.Info().Str("table", res.Name).Msg("created table")
		case types.TableExisted:
			s.log.Debug().Str("table", res.Name).Msg("table already exists")
		case types.TableFailed:
			s.log.Error().Err(res.Err).Str("table", res.Name).Msg("creating table failed")
		}
		report.Tables = append(report.Tables, res)
	}

	s.createIndexes(ctx)
	report.Seed = s.seedSettings(ctx)
	return report, nil
}

// createTable creates one table if it is absent and classifies the outcome.
func (s *Store) createTable(ctx context.Context, td tableDef) types.TableResult {
	exists, err := s.tableExists(ctx, td.name)
	if err == nil && exists {
		return types.TableResult{Name: td.name, Status: types.TableExisted}
	}

	if _, err := s.execLocked(ctx, s.translate(td.ddl)); err != nil {
		if isAlreadyExists(err) {
			return types.TableResult{Name: td.name, Status: types.TableExisted}
		}
		return types.TableResult{Name: td.name, Status: types.TableFailed, Err: err}
	}
	return types.TableResult{Name: td.name, Status: types.TableCreated}
}

// createIndexes creates the secondary indexes. Already-exists errors are
// expected on re-initialization and swallowed; anything else is logged and
// skipped.
func (s *Store) createIndexes(ctx context.Context) {
	for _, ddl := range indexDDL {
		if _, err := s.execLocked(ctx, s.translate(ddl)); err != nil && !isAlreadyExists(err) {
			s.log.Warn().Err(err).Msg("creating index failed")
		}
	}
}

// tableExists checks the engine's catalog for the table.
func (s *Store) tableExists(ctx context.Context, name string) (bool, error) {
	var query string
	switch s.cfg.Driver {
	case types.DriverMySQL:
		query = `SELECT COUNT(*) FROM information_schema.tables
            WHERE table_schema = DATABASE() AND table_name = ?`
	default:
		query = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`
	}
	n, err := s.countLocked(ctx, query, name)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// isAlreadyExists reports whether err is a table-exists or index-exists
// error from either engine.
func isAlreadyExists(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrTableExists || me.Number == mysqlErrDupKeyName
	}
	return strings.Contains(err.Error(), "already exists")
}

// isDuplicateRow reports whether err is a uniqueness-constraint violation
// from either engine.
func isDuplicateRow(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrDupEntry
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
