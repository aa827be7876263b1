package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNormalizesBlock(t *testing.T) {
	m, err := Build(testBlock(
		textRow(" id ", "Name"),
		textRow("1", "alice"),
		textRow("2", "bob"),
	))
	require.NoError(t, err)

	require.Len(t, m.Headers, 2)
	assert.Equal(t, "id", m.Headers[0].Name, "header names are trimmed once")
	assert.Equal(t, "Name", m.Headers[1].Name)

	require.Len(t, m.Records, 2)
	assert.Equal(t, 0, m.Records[0].RowIndex)
	assert.Equal(t, 1, m.Records[1].RowIndex)
	assert.Equal(t, "alice", m.Records[0].Cells[1].Value.Text)
}

func TestBuildRejectsTooFewRows(t *testing.T) {
	var shapeErr *ShapeError

	_, err := Build(nil)
	require.ErrorAs(t, err, &shapeErr)

	_, err = Build(testBlock(textRow("id", "name")))
	require.ErrorAs(t, err, &shapeErr, "header without data rows is a shape error")
}

func TestBuildRejectsDuplicateHeaders(t *testing.T) {
	_, err := Build(testBlock(
		textRow("ID", " id "),
		textRow("1", "2"),
	))

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr, "case- and whitespace-insensitive collision")
	assert.Contains(t, err.Error(), "duplicate header")
}

func TestBuildRejectsBlankHeaderCell(t *testing.T) {
	_, err := Build(testBlock(
		[]Value{Text("id"), Missing()},
		textRow("1", "x"),
	))

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestBuildPadsShortRows(t *testing.T) {
	m, err := Build(testBlock(
		textRow("a", "b", "c"),
		textRow("1"),
	))
	require.NoError(t, err)

	rec := m.Records[0]
	require.Len(t, rec.Cells, 3, "every record has exactly one cell per header")
	assert.Equal(t, KindText, rec.Cells[0].Value.Kind)
	assert.Equal(t, KindMissing, rec.Cells[1].Value.Kind)
	assert.Equal(t, KindMissing, rec.Cells[2].Value.Kind)
}

func TestColumnLookupIsCanonical(t *testing.T) {
	m := mustBuild(
		textRow("Name", "Email"),
		textRow("a", "b"),
	)

	idx, ok := m.Column("  name ")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = m.Column("EMAIL")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = m.Column("missing-column")
	assert.False(t, ok)
}

func TestResolveColumnsErrors(t *testing.T) {
	m := mustBuild(
		textRow("a", "b"),
		textRow("1", "2"),
	)

	var cfgErr *ConfigError

	_, err := m.resolveColumns([]string{"a", "nope"})
	require.ErrorAs(t, err, &cfgErr)

	_, err = m.resolveColumns([]string{""})
	require.ErrorAs(t, err, &cfgErr, "empty column name is a config error")
}

func TestResolveColumnsOrdersByHeader(t *testing.T) {
	m := mustBuild(
		textRow("a", "b", "c"),
		textRow("1", "2", "3"),
	)

	cols, err := m.resolveColumns([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, cols, "selection comes back in header order")

	all, err := m.resolveColumns(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, all)
}
