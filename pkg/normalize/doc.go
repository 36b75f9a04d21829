// Package normalize turns raw worksheet cells into the canonical forms
// shared by every vendor pipeline.
//
// All functions are pure and idempotent - applying them twice produces
// the same result. They never fail: unexpected cell content degrades to
// its string form rather than an error.
//
// Normalization includes:
//   - Match keys: concatenate address, city, state and zip, lowercase the
//     result and strip every character outside [a-z0-9] - "123 Main St.",
//     "Springfield", "IL", "62701" becomes "123mainstspringfieldil62701"
//   - Values: map cells to JSON-safe scalars (null, float64 or string),
//     with dates rendered as ISO 8601 strings
//
// Street abbreviations are left as reported, so "St" and "Street" yield
// different match keys. Downstream matching depends on the exact current
// behavior.
package normalize
