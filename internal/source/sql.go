package source

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BartekS5/cellcheck/internal/validate"
	"github.com/BartekS5/cellcheck/pkg/logger"
)

// SQLSource reads a block from a SQL result set: column names become the
// header row, driver values map onto the cell value variant. Addresses
// are synthetic A1-style coordinates so findings still point at an exact
// cell.
type SQLSource struct {
	DB    *sql.DB
	Table string
	Query string
}

// NewSQLSource builds a SQL source from either a full query or a bare
// table name.
func NewSQLSource(db *sql.DB, table, query string) *SQLSource {
	return &SQLSource{DB: db, Table: table, Query: query}
}

func (s *SQLSource) Read() (*validate.RawBlock, error) {
	query := strings.TrimSpace(s.Query)
	if query == "" {
		if strings.TrimSpace(s.Table) == "" {
			return nil, fmt.Errorf("SQL source needs a table name or a query")
		}
		query = fmt.Sprintf("SELECT * FROM %s", s.Table)
	}

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	block := &validate.RawBlock{}
	header := make([]validate.RawCell, len(cols))
	for c, name := range cols {
		addr, _ := excelize.CoordinatesToCellName(c+1, 1)
		header[c] = validate.RawCell{Row: 0, Col: c, Addr: addr, Value: validate.Text(name)}
	}
	block.Cells = append(block.Cells, header)

	rowIndex := 1
	for rows.Next() {
		columns := make([]interface{}, len(cols))
		columnPointers := make([]interface{}, len(cols))
		for i := range columns {
			columnPointers[i] = &columns[i]
		}
		if err := rows.Scan(columnPointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", rowIndex, err)
		}

		cells := make([]validate.RawCell, len(cols))
		for c := range cols {
			addr, _ := excelize.CoordinatesToCellName(c+1, rowIndex+1)
			cells[c] = validate.RawCell{
				Row:   rowIndex,
				Col:   c,
				Addr:  addr,
				Value: driverValue(columns[c]),
			}
		}
		block.Cells = append(block.Cells, cells)
		rowIndex++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("result iteration failed: %w", err)
	}

	logger.Infof("read %d data rows x %d columns from SQL", rowIndex-1, len(cols))
	return block, nil
}

// driverValue maps a database/sql scan value onto the cell value variant.
func driverValue(v interface{}) validate.Value {
	switch val := v.(type) {
	case nil:
		return validate.Missing()
	case []byte:
		return validate.Text(string(val))
	case string:
		return validate.Text(val)
	case int64:
		return validate.Number(float64(val))
	case float64:
		return validate.Number(val)
	case bool:
		return validate.Bool(val)
	case time.Time:
		return validate.Time(val)
	default:
		return validate.Text(fmt.Sprintf("%v", val))
	}
}
