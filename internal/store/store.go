// Package store implements the portable data layer behind the types.Store
// interface: a bounded connection pool over MySQL or SQLite, dialect
// translation at the point of execution, and idempotent schema bootstrap
// with one-time seeding.
package store

import (
	"database/sql"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	_ "modernc.org/sqlite"

	"github.com/volunteerhub/steward/pkg/dialect"
	"github.com/volunteerhub/steward/pkg/types"
)

// Store implements types.Store over a database/sql pool. One Store is shared
// by every caller for the lifetime of the process; its only mutation after
// Open is connections cycling through the pool and the one-way closed flag.
type Store struct {
	mu     sync.RWMutex
	closed bool
	cfg    types.Config
	db     *sql.DB
	sem    *semaphore.Weighted
	log    zerolog.Logger
}

var _ types.Store = (*Store)(nil)

// Open validates cfg, applies defaults, and returns a Store backed by the
// configured engine. The underlying pool connects lazily; an unreachable
// backing store surfaces as an error on the first statement, not here.
func Open(cfg types.Config, log zerolog.Logger) (*Store, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	return newStore(cfg, db, log), nil
}

// newStore wires an already-open *sql.DB into a Store. Split out from Open so
// tests can inject a mock driver.
func newStore(cfg types.Config, db *sql.DB, log zerolog.Logger) *Store {
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)
	return &Store{
		cfg: cfg,
		db:  db,
		sem: semaphore.NewWeighted(int64(cfg.MaxConns)),
		log: log,
	}
}

// Close releases every pooled connection. Idempotent: repeated calls return
// nil. Statements in flight finish before the pool is torn down; operations
// issued after Close report ErrStoreClosed through their callback.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.log.Debug().Msg("store closed")
	return nil
}

// Dialect returns the name of the backing engine's dialect.
func (s *Store) Dialect() string {
	return s.cfg.Driver
}

// translate rewrites stmt for the backing engine. Statements are authored in
// SQLite syntax, so only the MySQL engine needs rewriting.
func (s *Store) translate(stmt string) string {
	if s.cfg.Driver == types.DriverMySQL {
		return dialect.Translate(stmt)
	}
	return stmt
}
