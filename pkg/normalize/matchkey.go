package normalize

import (
	"regexp"
	"strings"

	"creingest/pkg/tabular"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// MatchKey derives the property identity key from the four address
// components. Missing cells contribute nothing; every other cell
// contributes its string form. The result contains only [a-z0-9] and is
// empty when all four inputs are missing or strip to nothing.
func MatchKey(address, city, state, zip tabular.Cell) string {
	var b strings.Builder
	for _, c := range []tabular.Cell{address, city, state, zip} {
		if c.IsMissing() {
			continue
		}
		b.WriteString(c.String())
	}
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(b.String()), "")
}
