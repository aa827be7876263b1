package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BartekS5/cellcheck/internal/config"
	"github.com/BartekS5/cellcheck/internal/source"
	"github.com/BartekS5/cellcheck/internal/store"
	"github.com/BartekS5/cellcheck/internal/validate"
	"github.com/BartekS5/cellcheck/pkg/database"
	"github.com/BartekS5/cellcheck/pkg/models"
)

// ErrFindings marks a run that completed but found dirty data. main maps
// it to ExitFindings; every other error maps to ExitError.
var ErrFindings = errors.New("data failed validation")

func runValidate(opts *ValidateOptions) error {
	cfg := config.LoadConfig()

	if opts.RulesFile != "" {
		rules, err := config.LoadRules(opts.RulesFile)
		if err != nil {
			return err
		}
		applyRules(opts, rules)
	}

	src, cleanup, err := buildSource(opts, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	block, err := src.Read()
	if err != nil {
		return err
	}

	model, err := validate.Build(block)
	if err != nil {
		return err
	}

	runOpts, err := buildRunOptions(opts)
	if err != nil {
		return err
	}

	format, err := validate.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	report, err := validate.Run(model, runOpts)
	if err != nil {
		return err
	}

	rendered, err := validate.Render(report, format)
	if err != nil {
		return err
	}
	fmt.Print(rendered)

	if opts.Archive {
		if err := archiveReport(cfg, report); err != nil {
			return err
		}
	}

	if !report.Valid {
		return fmt.Errorf("%w: %d findings", ErrFindings, report.Summary.Total())
	}
	return nil
}

// applyRules copies rules-file values into options the user did not set
// on the command line; explicit flags win.
func applyRules(opts *ValidateOptions, rules *models.RuleSet) {
	if opts.Sheet == "" {
		opts.Sheet = rules.Sheet
	}
	if opts.Range == "" {
		opts.Range = rules.Range
	}
	if opts.Checks == "" {
		opts.Checks = strings.Join(rules.Checks, ",")
	}
	if opts.RequiredColumns == "" {
		opts.RequiredColumns = strings.Join(rules.RequiredColumns, ",")
	}
	if opts.KeyColumns == "" {
		opts.KeyColumns = strings.Join(rules.KeyColumns, ",")
	}
	if opts.ColumnTypes == "" {
		pairs := make([]string, 0, len(rules.ColumnTypes))
		for name, typeName := range rules.ColumnTypes {
			pairs = append(pairs, name+":"+typeName)
		}
		sort.Strings(pairs)
		opts.ColumnTypes = strings.Join(pairs, ",")
	}
}

func buildSource(opts *ValidateOptions, cfg *config.Config) (source.Source, func(), error) {
	noop := func() {}

	if opts.Query != "" || opts.Table != "" {
		if opts.FilePath != "" {
			return nil, noop, fmt.Errorf("--file-path cannot be combined with --table/--query")
		}
		if cfg.SQLConnString == "" {
			return nil, noop, fmt.Errorf("CELLCHECK_SQL_CONN is not set; the SQL source needs it")
		}
		db, err := database.ConnectSQL(cfg.SQLConnString)
		if err != nil {
			return nil, noop, err
		}
		return source.NewSQLSource(db, opts.Table, opts.Query), func() { db.Close() }, nil
	}

	if opts.FilePath == "" {
		return nil, noop, fmt.Errorf("either --file-path or --table/--query is required")
	}
	return source.NewExcelSource(opts.FilePath, opts.Sheet, opts.Range), noop, nil
}

func buildRunOptions(opts *ValidateOptions) (validate.Options, error) {
	checks, err := validate.ParseChecks(opts.Checks)
	if err != nil {
		return validate.Options{}, err
	}

	columnTypes, err := parseColumnTypes(opts.ColumnTypes)
	if err != nil {
		return validate.Options{}, err
	}

	return validate.Options{
		Checks:          checks,
		RequiredColumns: splitList(opts.RequiredColumns),
		KeyColumns:      splitList(opts.KeyColumns),
		Types:           validate.TypeOptions{Columns: columnTypes},
	}, nil
}

// splitList splits a comma-separated flag value. Entries are trimmed but
// kept even when empty, so "a,,b" surfaces as a config error downstream
// instead of being silently patched up.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseColumnTypes parses "name:type,..." pairs.
func parseColumnTypes(s string) ([]validate.ColumnType, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var columnTypes []validate.ColumnType
	for _, pair := range strings.Split(s, ",") {
		name, typeName, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid column type %q (want name:type)", pair)
		}
		kind, err := validate.ParseTypeKind(typeName)
		if err != nil {
			return nil, err
		}
		columnTypes = append(columnTypes, validate.ColumnType{
			Column: strings.TrimSpace(name),
			Kind:   kind,
		})
	}
	return columnTypes, nil
}

func archiveReport(cfg *config.Config, report *validate.Report) error {
	if cfg.MongoConnString == "" {
		return fmt.Errorf("CELLCHECK_MONGO_CONN is not set; --archive needs it")
	}
	client, err := database.ConnectMongo(cfg.MongoConnString)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	archive := store.NewMongoArchive(client)
	return archive.Store(context.Background(), report)
}
