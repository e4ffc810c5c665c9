// Package store provides the public entry point for the steward data layer
// while keeping the implementation internal.
package store

import (
	"github.com/rs/zerolog"

	"github.com/volunteerhub/steward/internal/store"
	"github.com/volunteerhub/steward/pkg/types"
)

// Open validates cfg and returns a Store backed by the configured engine.
// The store is shared process-wide; open it once at startup and pass it to
// every component that needs data access.
//
// Example:
//
//	st, err := store.Open(types.Config{
//	    Driver:   types.DriverMySQL,
//	    Host:     "127.0.0.1",
//	    User:     "steward",
//	    Password: secret,
//	    Database: "volunteers",
//	}, logger)
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
func Open(cfg types.Config, log zerolog.Logger) (types.Store, error) {
	return store.Open(cfg, log)
}
