// Ping command: checks that the backing store answers a trivial query.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/volunteerhub/steward/pkg/store"
	"github.com/volunteerhub/steward/pkg/types"
)

// pingTimeout bounds the connectivity check.
const pingTimeout = 10 * time.Second

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity to the backing database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, "ping:", err)
				os.Exit(exitSysError)
			}

			st, err := store.Open(cfg, newLogger())
			if err != nil {
				fmt.Fprintln(os.Stderr, "ping:", err)
				os.Exit(exitSysError)
			}
			defer st.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
			defer cancel()

			var pingErr error
			st.QueryOne(ctx, "SELECT 1", nil, func(row types.Row, err error) {
				pingErr = err
			})
			if pingErr != nil {
				fmt.Fprintln(os.Stderr, "ping:", pingErr)
				os.Exit(exitSysError)
			}

			fmt.Printf("%s database reachable (%s)\n", cfg.Driver, cfg.Database)
			return nil
		},
	}
}
