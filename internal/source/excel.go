package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/BartekS5/cellcheck/internal/validate"
	"github.com/BartekS5/cellcheck/pkg/logger"
)

// ExcelSource reads a block of cells from an .xlsx workbook or a .csv
// file. Range is an optional A1:F14-style rectangle; when empty the whole
// used area of the sheet is read starting at A1.
type ExcelSource struct {
	FilePath string
	Sheet    string
	Range    string
}

// NewExcelSource builds a file source; sheet defaults to "Sheet1".
func NewExcelSource(filePath, sheet, cellRange string) *ExcelSource {
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &ExcelSource{FilePath: filePath, Sheet: sheet, Range: cellRange}
}

func (s *ExcelSource) Read() (*validate.RawBlock, error) {
	if _, err := os.Stat(s.FilePath); err != nil {
		return nil, fmt.Errorf("source file not found: %s", s.FilePath)
	}
	if strings.ToLower(filepath.Ext(s.FilePath)) == ".csv" {
		return s.readCSV()
	}
	return s.readWorkbook()
}

func (s *ExcelSource) readWorkbook() (*validate.RawBlock, error) {
	f, err := excelize.OpenFile(s.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if s.Range != "" {
		return s.readRange(f)
	}
	return s.readWholeSheet(f)
}

// readRange walks the requested rectangle cell by cell. GetCellType
// distinguishes a truly empty cell (missing) from one holding an empty
// string, which GetRows cannot.
func (s *ExcelSource) readRange(f *excelize.File) (*validate.RawBlock, error) {
	c1, r1, c2, r2, err := parseRange(s.Range)
	if err != nil {
		return nil, err
	}

	block := &validate.RawBlock{}
	for r := r1; r <= r2; r++ {
		row := make([]validate.RawCell, 0, c2-c1+1)
		for c := c1; c <= c2; c++ {
			addr, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, fmt.Errorf("bad cell coordinates (%d,%d): %w", c, r, err)
			}
			value, err := s.readCell(f, addr)
			if err != nil {
				return nil, err
			}
			row = append(row, validate.RawCell{
				Row:   r - r1,
				Col:   c - c1,
				Addr:  addr,
				Value: value,
			})
		}
		block.Cells = append(block.Cells, row)
	}
	logger.Infof("read %s!%s: %d rows x %d columns", s.Sheet, s.Range, r2-r1+1, c2-c1+1)
	return block, nil
}

func (s *ExcelSource) readCell(f *excelize.File, addr string) (validate.Value, error) {
	raw, err := f.GetCellValue(s.Sheet, addr)
	if err != nil {
		return validate.Value{}, fmt.Errorf("failed to read cell %s: %w", addr, err)
	}
	if raw != "" {
		return validate.Text(raw), nil
	}
	// An empty value is either a truly absent cell or a stored empty
	// string. Only string-typed cells can hold the latter; untyped cells
	// with no value do not exist in the sheet.
	cellType, err := f.GetCellType(s.Sheet, addr)
	if err != nil {
		return validate.Value{}, fmt.Errorf("failed to inspect cell %s: %w", addr, err)
	}
	if cellType == excelize.CellTypeUnset {
		return validate.Missing(), nil
	}
	return validate.Text(raw), nil
}

func (s *ExcelSource) readWholeSheet(f *excelize.File) (*validate.RawBlock, error) {
	rows, err := f.GetRows(s.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", s.Sheet, err)
	}
	logger.Infof("read %s: %d rows", s.Sheet, len(rows))
	return blockFromStrings(rows), nil
}

func (s *ExcelSource) readCSV() (*validate.RawBlock, error) {
	file, err := os.Open(s.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	logger.Infof("read %s: %d rows", filepath.Base(s.FilePath), len(rows))
	return blockFromStrings(rows), nil
}

// blockFromStrings converts already-materialized string rows into a raw
// block. Rows shorter than the widest row are padded with the missing
// marker here, while the sheet geometry is still known, so even absent
// cells carry a real address.
func blockFromStrings(rows [][]string) *validate.RawBlock {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	block := &validate.RawBlock{Cells: make([][]validate.RawCell, 0, len(rows))}
	for r, row := range rows {
		cells := make([]validate.RawCell, 0, width)
		for c := 0; c < width; c++ {
			addr, _ := excelize.CoordinatesToCellName(c+1, r+1)
			value := validate.Missing()
			if c < len(row) {
				value = validate.Text(row[c])
			}
			cells = append(cells, validate.RawCell{
				Row:   r,
				Col:   c,
				Addr:  addr,
				Value: value,
			})
		}
		block.Cells = append(block.Cells, cells)
	}
	return block
}

// parseRange splits an A1:F14-style rectangle into 1-based corner
// coordinates, normalizing reversed corners.
func parseRange(cellRange string) (c1, r1, c2, r2 int, err error) {
	parts := strings.Split(cellRange, ":")
	if len(parts) != 2 {
		return 0, 0, 0, 0, fmt.Errorf("invalid range %q (want e.g. A1:F14)", cellRange)
	}
	c1, r1, err = excelize.CellNameToCoordinates(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid range start %q: %w", parts[0], err)
	}
	c2, r2, err = excelize.CellNameToCoordinates(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return c1, r1, c2, r2, nil
}
