// Package pipeline maps vendor spreadsheet exports onto normalized
// listing records. Each vendor format gets its own pipeline; all of them
// share the tabular reader and the normalization rules.
package pipeline

import (
	"io"

	"creingest/pkg/model"
)

// Pipeline turns one vendor's export stream into normalized records.
type Pipeline interface {
	// Source returns the vendor label stamped on every record.
	Source() string
	// Run parses the stream and maps each row, in worksheet order, to a
	// record. The first failure aborts the whole file; there are no
	// partial results.
	Run(r io.Reader) ([]model.Record, error)
}
