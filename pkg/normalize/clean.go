package normalize

import (
	"time"

	"creingest/pkg/tabular"
)

// Clean maps a cell to its JSON-safe scalar: nil for missing cells, an
// ISO 8601 string for times, float64 for numbers and the string form for
// everything else. Booleans clean to "true" or "false", which lets a
// pipeline re-derive a real boolean by string comparison where a vendor
// column calls for one.
func Clean(c tabular.Cell) any {
	switch c.Kind() {
	case tabular.KindMissing:
		return nil
	case tabular.KindTime:
		return c.Time().Format(time.RFC3339)
	case tabular.KindNumber:
		return c.Number()
	default:
		return c.String()
	}
}
