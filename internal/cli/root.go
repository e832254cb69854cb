package cli

import (
	"fmt"
	"os"

	"github.com/Egor213/PgDash/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the pgdash command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pgdash",
		Short:         "PostgreSQL dashboard service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newParseCmd())
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.Run()
		},
	}
}
