package validate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects the report rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, Format(""):
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", configErrorf("unknown format %q (want text or json)", s)
	}
}

// Render renders a finished report. It reads the report and nothing else:
// no check is re-run and no field is mutated, so rendering the same report
// twice yields byte-identical output.
func Render(r *Report, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(r)
	case FormatText, Format(""):
		return renderText(r), nil
	default:
		return "", configErrorf("unknown format %q (want text or json)", string(format))
	}
}

func renderJSON(r *Report) (string, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(out) + "\n", nil
}

func renderText(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "validated %d rows x %d columns\n", r.Rows, r.Columns)

	counts := []struct {
		kind  FindingKind
		count int
	}{
		{FindingNull, r.Summary.Null},
		{FindingDuplicateRow, r.Summary.DuplicateRow},
		{FindingDuplicateKey, r.Summary.DuplicateKey},
		{FindingTypeMismatch, r.Summary.TypeMismatch},
	}
	for _, c := range counts {
		fmt.Fprintf(&b, "%s: %d\n", c.kind, c.count)
		for _, f := range r.Findings {
			if f.Kind != c.kind {
				continue
			}
			b.WriteString("  " + findingLine(f) + "\n")
		}
	}

	if r.Valid {
		b.WriteString("result: PASS (0 findings)\n")
	} else {
		fmt.Fprintf(&b, "result: FAIL (%d findings)\n", r.Summary.Total())
	}
	return b.String()
}

func findingLine(f Finding) string {
	coords := strings.Join(f.Coordinates, " ")
	if f.Column != "" {
		return fmt.Sprintf("%s [%s]: %s", coords, f.Column, f.Detail)
	}
	return fmt.Sprintf("%s: %s", coords, f.Detail)
}
