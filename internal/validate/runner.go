package validate

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CheckKind selects one of the independent checkers.
type CheckKind string

const (
	CheckNull      CheckKind = "null"
	CheckDuplicate CheckKind = "duplicate"
	CheckType      CheckKind = "type"
)

// AllChecks is the default selection, in canonical order.
var AllChecks = []CheckKind{CheckNull, CheckDuplicate, CheckType}

// ParseChecks parses a comma-separated check selection. An empty string
// selects all checks; an unknown name is a ConfigError.
func ParseChecks(s string) ([]CheckKind, error) {
	if strings.TrimSpace(s) == "" {
		return AllChecks, nil
	}
	seen := make(map[CheckKind]bool, 3)
	for _, part := range strings.Split(s, ",") {
		switch kind := CheckKind(strings.ToLower(strings.TrimSpace(part))); kind {
		case CheckNull, CheckDuplicate, CheckType:
			seen[kind] = true
		default:
			return nil, configErrorf("unknown check %q (want null, duplicate or type)", strings.TrimSpace(part))
		}
	}
	var checks []CheckKind
	for _, kind := range AllChecks {
		if seen[kind] {
			checks = append(checks, kind)
		}
	}
	return checks, nil
}

// Options is the immutable configuration for one validation run. There is
// no process-wide state: everything a run needs travels in here.
type Options struct {
	Checks          []CheckKind
	RequiredColumns []string
	KeyColumns      []string
	Types           TypeOptions
}

// Summary holds per-kind finding counts in the fixed report order.
type Summary struct {
	Null         int `json:"null" bson:"null"`
	DuplicateRow int `json:"duplicate_row" bson:"duplicate_row"`
	DuplicateKey int `json:"duplicate_key" bson:"duplicate_key"`
	TypeMismatch int `json:"type_mismatch" bson:"type_mismatch"`
}

// Report is the immutable outcome of one validation run. CheckID and
// CheckedAt identify the run in the archive; they are excluded from the
// rendered output so rendering the same model twice stays byte-identical.
type Report struct {
	CheckID   string    `json:"-" bson:"check_id"`
	CheckedAt time.Time `json:"-" bson:"checked_at"`

	Valid    bool      `json:"valid" bson:"valid"`
	Rows     int       `json:"rows" bson:"rows"`
	Columns  int       `json:"columns" bson:"columns"`
	Summary  Summary   `json:"summary" bson:"summary"`
	Findings []Finding `json:"findings" bson:"findings"`
}

// Run executes the selected checkers against the model and merges their
// findings into a report, grouped in the fixed kind order null,
// duplicate_row, duplicate_key, type_mismatch. Each checker runs on its
// own with read access only; a ConfigError from any of them aborts the run
// with no partial report.
func Run(m *RecordModel, opts Options) (*Report, error) {
	checks := opts.Checks
	if len(checks) == 0 {
		checks = AllChecks
	}
	selected := make(map[CheckKind]bool, len(checks))
	for _, kind := range checks {
		switch kind {
		case CheckNull, CheckDuplicate, CheckType:
			selected[kind] = true
		default:
			return nil, configErrorf("unknown check %q", string(kind))
		}
	}

	buckets := make(map[FindingKind][]Finding, 4)
	if selected[CheckNull] {
		found, err := (NullChecker{}).Check(m, opts.RequiredColumns)
		if err != nil {
			return nil, err
		}
		buckets[FindingNull] = found
	}
	if selected[CheckDuplicate] {
		found, err := (DuplicateChecker{}).Check(m, opts.KeyColumns)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			buckets[f.Kind] = append(buckets[f.Kind], f)
		}
	}
	if selected[CheckType] {
		found, err := (TypeChecker{}).Check(m, opts.Types)
		if err != nil {
			return nil, err
		}
		buckets[FindingTypeMismatch] = found
	}

	findings := make([]Finding, 0,
		len(buckets[FindingNull])+len(buckets[FindingDuplicateRow])+
			len(buckets[FindingDuplicateKey])+len(buckets[FindingTypeMismatch]))
	for _, kind := range []FindingKind{FindingNull, FindingDuplicateRow, FindingDuplicateKey, FindingTypeMismatch} {
		findings = append(findings, buckets[kind]...)
	}

	return &Report{
		CheckID:   uuid.NewString(),
		CheckedAt: time.Now().UTC(),
		Valid:     len(findings) == 0,
		Rows:      len(m.Records),
		Columns:   len(m.Headers),
		Summary: Summary{
			Null:         len(buckets[FindingNull]),
			DuplicateRow: len(buckets[FindingDuplicateRow]),
			DuplicateKey: len(buckets[FindingDuplicateKey]),
			TypeMismatch: len(buckets[FindingTypeMismatch]),
		},
		Findings: findings,
	}, nil
}

// Total returns the number of findings across all kinds.
func (s Summary) Total() int {
	return s.Null + s.DuplicateRow + s.DuplicateKey + s.TypeMismatch
}
