package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullCheckerFlagsEveryBlankShape(t *testing.T) {
	m := mustBuild(
		textRow("name", "note"),
		[]Value{Text("alice"), Text("")},
		[]Value{Text("bob"), Text("   ")},
		[]Value{Text("carol"), Missing()},
		[]Value{Text("dave"), Text("fine")},
	)

	findings, err := (NullChecker{}).Check(m, nil)
	require.NoError(t, err)
	require.Len(t, findings, 3, "one finding per offending cell")

	assert.Equal(t, "empty string", findings[0].Detail)
	assert.Equal(t, []string{"B2"}, findings[0].Coordinates)
	assert.Equal(t, "whitespace-only string", findings[1].Detail)
	assert.Equal(t, []string{"B3"}, findings[1].Coordinates)
	assert.Equal(t, "missing value", findings[2].Detail)
	assert.Equal(t, []string{"B4"}, findings[2].Coordinates)

	for _, f := range findings {
		assert.Equal(t, FindingNull, f.Kind)
		assert.Equal(t, "note", f.Column)
	}
}

func TestNullCheckerScopesToRequiredColumns(t *testing.T) {
	m := mustBuild(
		textRow("name", "email", "age"),
		[]Value{Text("alice"), Missing(), Text("")},
		[]Value{Missing(), Text("b@x.com"), Text("30")},
	)

	findings, err := (NullChecker{}).Check(m, []string{"name", "email"})
	require.NoError(t, err)
	require.Len(t, findings, 2, "blank age cell is out of scope")

	// Row-major: record order first, then column order within the record.
	assert.Equal(t, []string{"B2"}, findings[0].Coordinates)
	assert.Equal(t, []string{"A3"}, findings[1].Coordinates)
}

func TestNullCheckerUnknownRequiredColumn(t *testing.T) {
	m := mustBuild(
		textRow("name"),
		textRow("alice"),
	)

	findings, err := (NullChecker{}).Check(m, []string{"no-such-column"})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr, "unknown columns fail fast, never silently ignored")
	assert.Nil(t, findings)
}

func TestNullCheckerCleanData(t *testing.T) {
	m := mustBuild(
		textRow("a", "b"),
		textRow("1", "2"),
		textRow("3", "4"),
	)

	findings, err := (NullChecker{}).Check(m, nil)
	require.NoError(t, err)
	assert.Empty(t, findings)
}
