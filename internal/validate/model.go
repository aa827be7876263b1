package validate

import (
	"fmt"
	"strings"
)

// RawCell is one cell as handed over by a data source. Row and Col are
// zero-based positions inside the block (row 0 is the header row); Addr is
// the spreadsheet address the cell came from and is used for diagnostics
// only, never for logic.
type RawCell struct {
	Row   int
	Col   int
	Addr  string
	Value Value
}

// RawBlock is the rectangular grid a source reads: header row first, data
// rows after. Rows may be ragged; Build pads short rows with the missing
// marker.
type RawBlock struct {
	Cells [][]RawCell
}

// Header is one column declaration: the trimmed name and its zero-based
// column index.
type Header struct {
	Name  string
	Index int
}

// Record is one data row. Cells holds exactly one cell per declared
// header, in column order. RowIndex is the zero-based data row index
// (header row excluded).
type Record struct {
	RowIndex int
	Cells    []RawCell
}

// RecordModel is the normalized form of a block: ordered records plus the
// header list and a case-insensitive name lookup. It is built once per
// invocation and read-only afterwards, so checkers may share it freely.
type RecordModel struct {
	Headers []Header
	Records []Record

	index map[string]int
}

func headerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Build normalizes a raw block into a RecordModel. The first row is the
// header. It fails with a ShapeError when there is no data row or when two
// header names collapse to the same key under trimming and case folding;
// ambiguous column matching has to be rejected here, not discovered in the
// middle of a check.
func Build(block *RawBlock) (*RecordModel, error) {
	if block == nil || len(block.Cells) < 2 {
		return nil, shapeErrorf("block must contain a header row and at least one data row")
	}

	headerRow := block.Cells[0]
	if len(headerRow) == 0 {
		return nil, shapeErrorf("header row is empty")
	}

	m := &RecordModel{
		Headers: make([]Header, 0, len(headerRow)),
		index:   make(map[string]int, len(headerRow)),
	}
	for i, cell := range headerRow {
		name := strings.TrimSpace(cell.Value.Display())
		if cell.Value.Kind == KindMissing || name == "" {
			return nil, shapeErrorf("header cell %s is empty", cellLabel(cell))
		}
		key := headerKey(name)
		if prev, ok := m.index[key]; ok {
			return nil, shapeErrorf("duplicate header %q (columns %d and %d)", name, prev, i)
		}
		m.index[key] = i
		m.Headers = append(m.Headers, Header{Name: name, Index: i})
	}

	width := len(m.Headers)
	m.Records = make([]Record, 0, len(block.Cells)-1)
	for r := 1; r < len(block.Cells); r++ {
		row := block.Cells[r]
		rec := Record{RowIndex: r - 1, Cells: make([]RawCell, width)}
		for c := 0; c < width; c++ {
			if c < len(row) {
				rec.Cells[c] = row[c]
				continue
			}
			// Short source row: the cell exists in the model anyway,
			// carrying the missing marker.
			rec.Cells[c] = RawCell{Row: r, Col: c, Value: Missing()}
		}
		m.Records = append(m.Records, rec)
	}

	return m, nil
}

// Column resolves a column name to its index using the canonical
// (trimmed, case-folded) key.
func (m *RecordModel) Column(name string) (int, bool) {
	idx, ok := m.index[headerKey(name)]
	return idx, ok
}

// resolveColumns maps the given names onto column indexes, sorted into
// header order. An empty list selects every column. Empty or unknown
// names are a ConfigError.
func (m *RecordModel) resolveColumns(names []string) ([]int, error) {
	if len(names) == 0 {
		cols := make([]int, len(m.Headers))
		for i := range cols {
			cols[i] = i
		}
		return cols, nil
	}

	selected := make(map[int]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, configErrorf("empty column name in column list")
		}
		idx, ok := m.Column(name)
		if !ok {
			return nil, configErrorf("unknown column %q", strings.TrimSpace(name))
		}
		selected[idx] = true
	}

	cols := make([]int, 0, len(selected))
	for i := range m.Headers {
		if selected[i] {
			cols = append(cols, i)
		}
	}
	return cols, nil
}

// cellLabel renders a cell's location for findings, preferring the source
// address and falling back to block coordinates when a source could not
// provide one.
func cellLabel(cell RawCell) string {
	if cell.Addr != "" {
		return cell.Addr
	}
	return fmt.Sprintf("R%dC%d", cell.Row+1, cell.Col+1)
}

// rowSpan renders the location of a whole record, e.g. "A9:F9".
func rowSpan(rec Record) string {
	if len(rec.Cells) == 0 {
		return fmt.Sprintf("row %d", rec.RowIndex+1)
	}
	first := cellLabel(rec.Cells[0])
	last := cellLabel(rec.Cells[len(rec.Cells)-1])
	if first == last {
		return first
	}
	return first + ":" + last
}
