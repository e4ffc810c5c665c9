// Package main provides the steward CLI: operational tooling for the
// volunteer-management data layer (schema bootstrap, connectivity checks).
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	verbose   bool
}

var flags rootFlags

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

// newRootCmd creates the top-level "steward" command with global flags and
// all subcommands registered.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "steward",
		Short: "Data-layer tooling for the volunteer management backend",
		Long: `Steward manages the volunteer-management database: it creates the
schema on first boot, seeds the default organization settings, and checks
connectivity, against either a MySQL server or a local SQLite file.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newPingCmd())

	return root
}

// newLogger builds the CLI logger. Debug level when --verbose is set.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flags.verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
