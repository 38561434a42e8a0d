package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the comparison key of s: diacritics stripped, lower-cased and
// whitespace collapsed. "  José  PÉREZ " and "jose perez" share a key.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// Same reports whether two names are equal after folding. Blank names never
// match anything.
func Same(a, b string) bool {
	fa := Fold(a)
	return fa != "" && fa == Fold(b)
}

// ContainsFold reports whether needle occurs in haystack after folding both.
func ContainsFold(haystack, needle string) bool {
	n := Fold(needle)
	return n != "" && strings.Contains(Fold(haystack), n)
}
