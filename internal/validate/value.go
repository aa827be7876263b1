package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueKind tags the variant carried by a Value. Checkers switch on it
// exhaustively instead of probing interface{} values.
type ValueKind int

const (
	KindMissing ValueKind = iota
	KindText
	KindNumber
	KindBool
	KindTime
)

// Value is a single cell value. Kind selects which payload field is set;
// KindMissing carries no payload and marks a cell absent from the source,
// which is not the same thing as an empty string.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Bool   bool
	Time   time.Time
}

func Missing() Value         { return Value{Kind: KindMissing} }
func Text(s string) Value    { return Value{Kind: KindText, Text: s} }
func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }
func Bool(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func Time(t time.Time) Value { return Value{Kind: KindTime, Time: t} }

// IsBlank reports whether the value is missing or text with no visible
// characters. Blank values belong to the null check; the type check never
// attempts coercion on them.
func (v Value) IsBlank() bool {
	switch v.Kind {
	case KindMissing:
		return true
	case KindText:
		return strings.TrimSpace(v.Text) == ""
	default:
		return false
	}
}

// Display renders the raw value for finding details.
func (v Value) Display() string {
	switch v.Kind {
	case KindMissing:
		return "<missing>"
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindTime:
		return v.Time.Format(time.RFC3339)
	default:
		return fmt.Sprintf("<kind %d>", v.Kind)
	}
}

// fingerprintToken returns the canonical form of the value used when
// grouping rows. The missing marker must never collide with any text a
// cell could actually contain, so it gets a NUL prefix.
func (v Value) fingerprintToken() string {
	switch v.Kind {
	case KindMissing:
		return "\x00missing"
	case KindText:
		return strings.TrimSpace(v.Text)
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindTime:
		return v.Time.UTC().Format(time.RFC3339Nano)
	default:
		return ""
	}
}
