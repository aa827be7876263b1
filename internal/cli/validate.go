package cli

import (
	"github.com/spf13/cobra"
)

// ValidateOptions carries every flag of the validate command. It is
// filled once by cobra and passed around read-only.
type ValidateOptions struct {
	FilePath        string
	Sheet           string
	Range           string
	Table           string
	Query           string
	Checks          string
	RequiredColumns string
	KeyColumns      string
	ColumnTypes     string
	RulesFile       string
	Format          string
	Archive         bool
}

func NewValidateCmd() *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a block of cells against data quality rules",
		Long: `Validate reads a header+data block from a spreadsheet, CSV file or SQL
result set, runs the selected checks and prints a report. Exit code 0
means the data is clean, 1 means findings exist, 2 means the invocation
or the block itself was bad.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runValidate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.FilePath, "file-path", "f", "", "Path to the source workbook or CSV file")
	cmd.Flags().StringVarP(&opts.Sheet, "sheet", "s", "", "Worksheet name (default Sheet1)")
	cmd.Flags().StringVarP(&opts.Range, "range", "r", "", "Block to validate, e.g. A1:F14 (first row is the header)")
	cmd.Flags().StringVar(&opts.Table, "table", "", "SQL table to validate instead of a file")
	cmd.Flags().StringVar(&opts.Query, "query", "", "SQL query whose result set is validated")
	cmd.Flags().StringVarP(&opts.Checks, "checks", "c", "", "Comma-separated subset of null,duplicate,type (default all)")
	cmd.Flags().StringVar(&opts.RequiredColumns, "required-columns", "", "Columns the null check is scoped to")
	cmd.Flags().StringVar(&opts.KeyColumns, "key-columns", "", "Columns whose value combination must be unique")
	cmd.Flags().StringVar(&opts.ColumnTypes, "column-types", "", "Declared column types, e.g. age:int,price:float,joined:date")
	cmd.Flags().StringVar(&opts.RulesFile, "rules", "", "Path to a JSON rules file (flags override it)")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Report format: text or json")
	cmd.Flags().BoolVar(&opts.Archive, "archive", false, "Archive the report to MongoDB (needs CELLCHECK_MONGO_CONN)")

	return cmd
}
