package validate

import "fmt"

// testBlock builds a RawBlock from value rows, assigning A1-style
// addresses the way a spreadsheet source would (block row 0 = sheet
// row 1).
func testBlock(rows ...[]Value) *RawBlock {
	block := &RawBlock{}
	for r, row := range rows {
		cells := make([]RawCell, len(row))
		for c, v := range row {
			cells[c] = RawCell{Row: r, Col: c, Addr: addr(c, r), Value: v}
		}
		block.Cells = append(block.Cells, cells)
	}
	return block
}

func addr(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row+1)
}

func textRow(values ...string) []Value {
	row := make([]Value, len(values))
	for i, v := range values {
		row[i] = Text(v)
	}
	return row
}

func mustBuild(rows ...[]Value) *RecordModel {
	m, err := Build(testBlock(rows...))
	if err != nil {
		panic(err)
	}
	return m
}
