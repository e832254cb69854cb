package cli

import (
	"fmt"
	"os"

	"github.com/Egor213/PgDash/internal/logparse"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a local server log file and print its entries as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logFormat, ok := logparse.ParseFormatName(format)
			if !ok {
				return fmt.Errorf("unknown log format %q", format)
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}

			entries := logparse.Parse(logparse.SplitLines(string(raw)), logFormat)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "plain", "log format: plain, csv, json")
	return cmd
}
