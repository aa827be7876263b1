package validate

import (
	"fmt"
	"strings"
)

// DuplicateChecker flags exact full-row duplicates and, when key columns
// are configured, duplicate values within the key-column set. Rows are
// grouped by a canonical fingerprint (the ordered tuple of normalized
// values), which keeps detection linear in the number of records.
type DuplicateChecker struct{}

// Check runs the full-row sub-check always and the key sub-check when
// keyColumns is non-empty. In each group the first occurrence in row order
// is the canonical instance and is not flagged; every later member gets
// one finding pointing back at it, so a consumer knows exactly which rows
// to remove.
func (DuplicateChecker) Check(m *RecordModel, keyColumns []string) ([]Finding, error) {
	var keyCols []int
	if len(keyColumns) > 0 {
		var err error
		keyCols, err = m.resolveColumns(keyColumns)
		if err != nil {
			return nil, err
		}
	}

	findings := fullRowDuplicates(m)

	if len(keyCols) > 0 {
		findings = append(findings, keyDuplicates(m, keyCols)...)
	}
	return findings, nil
}

func fullRowDuplicates(m *RecordModel) []Finding {
	firstSeen := make(map[string]int, len(m.Records))
	var findings []Finding
	for _, rec := range m.Records {
		fp := fingerprint(rec, nil)
		first, seen := firstSeen[fp]
		if !seen {
			firstSeen[fp] = rec.RowIndex
			continue
		}
		findings = append(findings, Finding{
			Kind:        FindingDuplicateRow,
			Coordinates: []string{rowSpan(rec), rowSpan(m.Records[first])},
			Detail: fmt.Sprintf("row %d is identical to row %d (%s)",
				rec.RowIndex, first, rowSpan(m.Records[first])),
		})
	}
	return findings
}

func keyDuplicates(m *RecordModel, keyCols []int) []Finding {
	keyNames := make([]string, len(keyCols))
	for i, col := range keyCols {
		keyNames[i] = m.Headers[col].Name
	}
	column := strings.Join(keyNames, ",")

	firstSeen := make(map[string]int, len(m.Records))
	var findings []Finding
	for _, rec := range m.Records {
		// Blank key values are the null check's concern; rows without a
		// complete key do not take part in uniqueness, same as a SQL
		// unique index treats NULLs.
		if keyIsBlank(rec, keyCols) {
			continue
		}
		fp := fingerprint(rec, keyCols)
		first, seen := firstSeen[fp]
		if !seen {
			firstSeen[fp] = rec.RowIndex
			continue
		}
		findings = append(findings, Finding{
			Kind:        FindingDuplicateKey,
			Column:      column,
			Coordinates: append(keyCellLabels(rec, keyCols), keyCellLabels(m.Records[first], keyCols)...),
			Detail: fmt.Sprintf("key %q in row %d already used by row %d",
				keyDisplay(rec, keyCols), rec.RowIndex, first),
		})
	}
	return findings
}

// fingerprint builds the canonical grouping key for a record, restricted
// to cols when given. Tokens are joined with a unit separator so distinct
// tuples can never collide.
func fingerprint(rec Record, cols []int) string {
	var b strings.Builder
	write := func(cell RawCell) {
		b.WriteString(cell.Value.fingerprintToken())
		b.WriteByte(0x1f)
	}
	if cols == nil {
		for _, cell := range rec.Cells {
			write(cell)
		}
		return b.String()
	}
	for _, col := range cols {
		write(rec.Cells[col])
	}
	return b.String()
}

func keyIsBlank(rec Record, keyCols []int) bool {
	for _, col := range keyCols {
		if rec.Cells[col].Value.IsBlank() {
			return true
		}
	}
	return false
}

func keyCellLabels(rec Record, keyCols []int) []string {
	labels := make([]string, len(keyCols))
	for i, col := range keyCols {
		labels[i] = cellLabel(rec.Cells[col])
	}
	return labels
}

func keyDisplay(rec Record, keyCols []int) string {
	parts := make([]string, len(keyCols))
	for i, col := range keyCols {
		parts[i] = strings.TrimSpace(rec.Cells[col].Value.Display())
	}
	return strings.Join(parts, ",")
}
