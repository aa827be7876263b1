package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/cellcheck/internal/fixture"
	"github.com/BartekS5/cellcheck/internal/validate"
)

func writeReference(t *testing.T) (path string, ds *fixture.Dataset) {
	t.Helper()
	ds = fixture.Reference()
	path = filepath.Join(t.TempDir(), "testdata.xlsx")
	require.NoError(t, fixture.WriteXLSX(path, "Sheet1", ds))
	return path, ds
}

func TestExcelSourceReadsRange(t *testing.T) {
	path, ds := writeReference(t)

	src := NewExcelSource(path, "Sheet1", ds.Range())
	block, err := src.Read()
	require.NoError(t, err)

	require.Len(t, block.Cells, 14, "header plus 13 data rows")
	for _, row := range block.Cells {
		assert.Len(t, row, 6)
	}

	header := block.Cells[0]
	assert.Equal(t, "A1", header[0].Addr)
	assert.Equal(t, "이름", header[0].Value.Text)
	assert.Equal(t, "회원ID", header[5].Value.Text)

	// Data row 2 has no 회원ID cell at all: truly missing, not empty.
	assert.Equal(t, validate.KindMissing, block.Cells[3][5].Value.Kind)
	assert.Equal(t, "F4", block.Cells[3][5].Addr)

	// Data row 8 holds an explicit empty string in 나이.
	assert.Equal(t, validate.KindText, block.Cells[9][2].Value.Kind)
	assert.Equal(t, "", block.Cells[9][2].Value.Text)

	// Data row 9 holds a whitespace-only 날짜.
	assert.Equal(t, "   ", block.Cells[10][4].Value.Text)
}

func TestExcelSourceEndToEnd(t *testing.T) {
	path, ds := writeReference(t)

	block, err := NewExcelSource(path, "Sheet1", ds.Range()).Read()
	require.NoError(t, err)
	model, err := validate.Build(block)
	require.NoError(t, err)

	report, err := validate.Run(model, validate.Options{
		RequiredColumns: []string{"이름", "이메일", "회원ID"},
		KeyColumns:      []string{"회원ID"},
		Types: validate.TypeOptions{Columns: []validate.ColumnType{
			{Column: "나이", Kind: validate.TypeInt},
			{Column: "가격", Kind: validate.TypeFloat},
			{Column: "날짜", Kind: validate.TypeDate},
		}},
	})
	require.NoError(t, err)

	assert.False(t, report.Valid)
	assert.Equal(t, validate.Summary{
		Null:         2,
		DuplicateRow: 1,
		DuplicateKey: 1,
		TypeMismatch: 3,
	}, report.Summary)
}

func TestExcelSourceMissingFile(t *testing.T) {
	src := NewExcelSource(filepath.Join(t.TempDir(), "nope.xlsx"), "", "")
	_, err := src.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	csv := "id,name,age\n1,alice,30\n2,bob\n3,,28\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	block, err := NewExcelSource(path, "", "").Read()
	require.NoError(t, err)

	require.Len(t, block.Cells, 4)
	require.Len(t, block.Cells[2], 3, "short rows are padded to sheet width")
	assert.Equal(t, validate.KindMissing, block.Cells[2][2].Value.Kind)
	assert.Equal(t, "C3", block.Cells[2][2].Addr, "padded cells still carry a real address")
	assert.Equal(t, "", block.Cells[3][1].Value.Text, "quoted empty field stays an empty string")
}

func TestParseRange(t *testing.T) {
	c1, r1, c2, r2, err := parseRange("A1:F14")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 6, 14}, []int{c1, r1, c2, r2})

	c1, r1, c2, r2, err = parseRange("F14:A1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 6, 14}, []int{c1, r1, c2, r2}, "reversed corners are normalized")

	_, _, _, _, err = parseRange("A1")
	require.Error(t, err)

	_, _, _, _, err = parseRange("A1:??")
	require.Error(t, err)
}
