package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	content := `{
		"entity": "customers",
		"range": "A1:F14",
		"checks": ["null", "type"],
		"requiredColumns": ["이름", "이메일"],
		"keyColumns": ["회원ID"],
		"columnTypes": {"나이": "int", "날짜": "date"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, "customers", rules.Entity)
	assert.Equal(t, "A1:F14", rules.Range)
	assert.Equal(t, []string{"null", "type"}, rules.Checks)
	assert.Equal(t, "int", rules.ColumnTypes["나이"])
}

func TestLoadRulesErrors(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))
	_, err = LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}
