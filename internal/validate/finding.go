package validate

// FindingKind names the category of a detected issue.
type FindingKind string

const (
	FindingNull         FindingKind = "null"
	FindingDuplicateRow FindingKind = "duplicate_row"
	FindingDuplicateKey FindingKind = "duplicate_key"
	FindingTypeMismatch FindingKind = "type_mismatch"
)

// Finding is one data-quality observation. It is data, never an error:
// misconfiguration is reported through ConfigError instead. Coordinates
// reference the offending cell for null/type findings; duplicate findings
// reference the offending row (or key cells) first and the canonical first
// occurrence second.
type Finding struct {
	Kind        FindingKind `json:"kind" bson:"kind"`
	Column      string      `json:"column,omitempty" bson:"column,omitempty"`
	Coordinates []string    `json:"coordinates" bson:"coordinates"`
	Detail      string      `json:"detail" bson:"detail"`
}
