package status

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify folds a status string into its lookup form: diacritics stripped,
// lower-cased, trimmed, underscores treated as spaces, whitespace collapsed.
// Slugs are the keys of the alias table and the basis of all prefix and
// substring matching against historical data.
func Slugify(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, value)
	if err != nil {
		stripped = value
	}

	stripped = strings.ToLower(strings.TrimSpace(stripped))
	stripped = strings.ReplaceAll(stripped, "_", " ")
	return strings.Join(strings.Fields(stripped), " ")
}
