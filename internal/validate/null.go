package validate

import "strings"

// NullChecker flags missing cells, empty strings and whitespace-only
// strings, optionally scoped to a required-column subset.
type NullChecker struct{}

// Check emits one null finding per blank cell in scope. Scope is the
// required columns when given, otherwise every column. Findings come out
// row-major (record order, then column order) so reruns are byte-stable.
func (NullChecker) Check(m *RecordModel, requiredColumns []string) ([]Finding, error) {
	cols, err := m.resolveColumns(requiredColumns)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, rec := range m.Records {
		for _, col := range cols {
			cell := rec.Cells[col]
			detail := ""
			switch cell.Value.Kind {
			case KindMissing:
				detail = "missing value"
			case KindText:
				trimmed := strings.TrimSpace(cell.Value.Text)
				if trimmed != "" {
					continue
				}
				if cell.Value.Text == "" {
					detail = "empty string"
				} else {
					detail = "whitespace-only string"
				}
			default:
				continue
			}
			findings = append(findings, Finding{
				Kind:        FindingNull,
				Column:      m.Headers[col].Name,
				Coordinates: []string{cellLabel(cell)},
				Detail:      detail,
			})
		}
	}
	return findings, nil
}
