// Package cli handles the command-line interface logic using the Cobra
// library.
package cli

import (
	"github.com/spf13/cobra"
)

// Exit codes, so automated callers can tell dirty data apart from a bad
// invocation.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cellcheck",
		Short: "cellcheck - data quality validation for tabular data",
		Long: `cellcheck validates a rectangular block of cell values (header row plus
data rows) against declarative rules. It detects null/missing values,
duplicate records and type mismatches, and renders a structured report.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewGenerateCmd())

	return rootCmd
}
