package store

import (
	"context"
	"database/sql"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"github.com/volunteerhub/steward/pkg/types"
)

// openDB opens the database/sql pool for the configured engine.
func openDB(cfg types.Config) (*sql.DB, error) {
	switch cfg.Driver {
	case types.DriverMySQL:
		return sql.Open("mysql", mysqlDSN(cfg))
	default:
		// SQLite: Database holds the file path.
		return sql.Open("sqlite", cfg.Database)
	}
}

// mysqlDSN builds the MySQL connection string from cfg. Using mysql.Config
// keeps credentials with special characters intact.
func mysqlDSN(cfg types.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	return mc.FormatDSN()
}

// acquire claims one pool slot. With the default policy excess callers wait
// in FIFO order without limit; with RejectWhenBusy they fail immediately
// with ErrPoolBusy. The claim bounds in-flight statements at MaxConns on top
// of the database/sql open-connection cap.
func (s *Store) acquire(ctx context.Context) error {
	if s.cfg.RejectWhenBusy {
		if !s.sem.TryAcquire(1) {
			return types.ErrPoolBusy
		}
		return nil
	}
	return s.sem.Acquire(ctx, 1)
}

// release returns a pool slot claimed by acquire.
func (s *Store) release() {
	s.sem.Release(1)
}
