package validate

import "fmt"

// ShapeError reports a malformed input block: too few rows to validate or
// ambiguous header names. It is raised while building the RecordModel,
// before any check runs.
type ShapeError struct {
	Msg string
}

func (e *ShapeError) Error() string {
	return "shape error: " + e.Msg
}

func shapeErrorf(format string, args ...interface{}) error {
	return &ShapeError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigError reports a misconfigured check: an unknown or empty column
// name in a scoping option, an unknown check or type kind. It aborts the
// whole run so a misconfiguration can never masquerade as a data finding.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Msg
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
