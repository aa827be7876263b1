// Package source contains the data-source collaborators that materialize
// a raw cell block for the validation engine: spreadsheet/CSV files and
// SQL result sets. Sources do all the I/O; the engine itself never reads
// anything.
package source

import "github.com/BartekS5/cellcheck/internal/validate"

// Source reads one rectangular block (header row first) from wherever the
// data lives.
type Source interface {
	Read() (*validate.RawBlock, error)
}
