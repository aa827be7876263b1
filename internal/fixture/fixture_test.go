package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceShape(t *testing.T) {
	ds := Reference()

	assert.Equal(t, []string{"이름", "이메일", "나이", "가격", "날짜", "회원ID"}, ds.Headers)
	require.Len(t, ds.Rows, 13)
	assert.Equal(t, "A1:F14", ds.Range())
}

func TestReferenceSeededIssues(t *testing.T) {
	ds := Reference()

	missing := 0
	for _, row := range ds.Rows {
		for c := range ds.Headers {
			if _, ok := row[c]; !ok {
				missing++
			}
		}
	}
	assert.Equal(t, 2, missing, "exactly the two absent member ids")

	assert.Equal(t, ds.Rows[2], ds.Rows[7], "the full-row duplicate pair")
	assert.Equal(t, ds.Rows[0][5], ds.Rows[10][5], "the reused member id")
	assert.Equal(t, "", ds.Rows[8][2])
	assert.Equal(t, "   ", ds.Rows[9][4])
}
