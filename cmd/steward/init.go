// Init command: creates the schema and seeds the default settings row.
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

// initTimeout bounds the whole schema bootstrap run.
const initTimeout = 2 * time.Minute

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database schema and seed default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, "init:", err)
				os.Exit(exitSysError)
			}

			st, err := store.Open(cfg, newLogger())
			if err != nil {
				fmt.Fprintln(os.Stderr, "init:", err)
				os.Exit(exitSysError)
			}
			defer st.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), initTimeout)
			defer cancel()

			report, err := st.Initialize(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, "init:", err)
				os.Exit(exitSysError)
			}

			printReport(report)
			return nil
		},
	}
}

// printReport summarizes the initialization outcome on stdout.
func printReport(report types.InitReport) {
	var created, existed int
	for _, tr := range report.Tables {
		switch tr.Status {
		case types.TableCreated:
			created++
		case types.TableExisted:
			existed++
		}
	}

	fmt.Printf("Schema initialized: %d tables created, %d already present\n", created, existed)
	fmt.Println("  settings seed:", report.Seed)
	for _, tr := range report.Failed() {
		fmt.Printf("  FAILED %s: %v\n", tr.Name, tr.Err)
	}
}
