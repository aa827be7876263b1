package models

import "encoding/json"

// RuleSet is the JSON rules file a user can ship alongside a workbook
// instead of spelling every option out on the command line. CLI flags
// override anything set here.
type RuleSet struct {
	Entity          string            `json:"entity,omitempty"`
	Sheet           string            `json:"sheet,omitempty"`
	Range           string            `json:"range,omitempty"`
	Checks          []string          `json:"checks,omitempty"`
	RequiredColumns []string          `json:"requiredColumns,omitempty"`
	KeyColumns      []string          `json:"keyColumns,omitempty"`
	ColumnTypes     map[string]string `json:"columnTypes,omitempty"`
}

// LoadRuleSet parses a rules file.
func LoadRuleSet(data []byte) (*RuleSet, error) {
	var r RuleSet
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
