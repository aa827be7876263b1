package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TypeKind is a declared column type the TypeChecker coerces against.
type TypeKind string

const (
	TypeInt   TypeKind = "int"
	TypeFloat TypeKind = "float"
	TypeDate  TypeKind = "date"
)

// ParseTypeKind parses a user-supplied type name.
func ParseTypeKind(s string) (TypeKind, error) {
	switch TypeKind(strings.ToLower(strings.TrimSpace(s))) {
	case TypeInt:
		return TypeInt, nil
	case TypeFloat:
		return TypeFloat, nil
	case TypeDate:
		return TypeDate, nil
	default:
		return "", configErrorf("unknown type %q (want int, float or date)", s)
	}
}

// ColumnType pairs a column name with its declared type.
type ColumnType struct {
	Column string
	Kind   TypeKind
}

// TypeOptions configures the type check. FlagMissing turns the missing
// marker in a typed column into a type_mismatch; by default absence is
// left to the null check.
type TypeOptions struct {
	Columns     []ColumnType
	FlagMissing bool
}

// TypeChecker flags cell values that fail to coerce into the type
// declared for their column.
type TypeChecker struct{}

// Check coerces every typed cell and emits one type_mismatch finding per
// failure. Blank text is exempt like the missing marker. Findings iterate
// records, then typed columns in header order, so output is stable no
// matter how the column/type mapping was supplied.
func (TypeChecker) Check(m *RecordModel, opts TypeOptions) ([]Finding, error) {
	kinds := make(map[int]TypeKind, len(opts.Columns))
	for _, ct := range opts.Columns {
		if strings.TrimSpace(ct.Column) == "" {
			return nil, configErrorf("empty column name in type mapping")
		}
		idx, ok := m.Column(ct.Column)
		if !ok {
			return nil, configErrorf("unknown column %q in type mapping", strings.TrimSpace(ct.Column))
		}
		if _, dup := kinds[idx]; dup {
			return nil, configErrorf("column %q declared twice in type mapping", m.Headers[idx].Name)
		}
		if _, err := ParseTypeKind(string(ct.Kind)); err != nil {
			return nil, err
		}
		kinds[idx] = ct.Kind
	}

	var findings []Finding
	for _, rec := range m.Records {
		for col := range m.Headers {
			kind, ok := kinds[col]
			if !ok {
				continue
			}
			cell := rec.Cells[col]
			if cell.Value.Kind == KindMissing {
				if !opts.FlagMissing {
					continue
				}
				findings = append(findings, Finding{
					Kind:        FindingTypeMismatch,
					Column:      m.Headers[col].Name,
					Coordinates: []string{cellLabel(cell)},
					Detail:      fmt.Sprintf("missing value in %s column", kind),
				})
				continue
			}
			if cell.Value.IsBlank() {
				continue
			}
			if coerce(cell.Value, kind) {
				continue
			}
			findings = append(findings, Finding{
				Kind:        FindingTypeMismatch,
				Column:      m.Headers[col].Name,
				Coordinates: []string{cellLabel(cell)},
				Detail:      fmt.Sprintf("value %q is not a valid %s", cell.Value.Display(), kind),
			})
		}
	}
	return findings, nil
}

var intPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

// dateLayouts are the accepted unambiguous date formats. "2006-01-02" is
// the baseline; the timestamp layouts match what upstream exports emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// coerce reports whether the value converts cleanly into the declared
// kind. It never mutates anything; success or failure is the whole story.
func coerce(v Value, kind TypeKind) bool {
	switch kind {
	case TypeInt:
		return coerceInt(v)
	case TypeFloat:
		return coerceFloat(v)
	case TypeDate:
		return coerceDate(v)
	default:
		return false
	}
}

func coerceInt(v Value) bool {
	switch v.Kind {
	case KindNumber:
		return v.Number == math.Trunc(v.Number)
	case KindText:
		return intPattern.MatchString(strings.TrimSpace(v.Text))
	default:
		return false
	}
}

func coerceFloat(v Value) bool {
	switch v.Kind {
	case KindNumber:
		return true
	case KindText:
		_, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		return err == nil
	default:
		return false
	}
}

func coerceDate(v Value) bool {
	switch v.Kind {
	case KindTime:
		return true
	case KindText:
		s := strings.TrimSpace(v.Text)
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	default:
		return false
	}
}
