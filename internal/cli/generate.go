package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BartekS5/cellcheck/internal/fixture"
)

type GenerateOptions struct {
	OutPath string
	Sheet   string
}

func NewGenerateCmd() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the reference dirty test workbook",
		Long: `Generate writes a small customer dataset seeded with missing cells, an
empty and a whitespace-only string, a full-row duplicate, a duplicate key
and three type mismatches. Useful for trying out the validate command.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "testdata.xlsx", "Output workbook path")
	cmd.Flags().StringVarP(&opts.Sheet, "sheet", "s", "Sheet1", "Worksheet name to write")

	return cmd
}

func runGenerate(opts *GenerateOptions) error {
	ds := fixture.Reference()
	if err := fixture.WriteXLSX(opts.OutPath, opts.Sheet, ds); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	fmt.Printf("Wrote %d rows x %d columns to %s (range %s)\n",
		len(ds.Rows), len(ds.Headers), opts.OutPath, ds.Range())
	return nil
}
