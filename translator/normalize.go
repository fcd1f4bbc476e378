package translator

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ============================================================================
// NORMALIZER — Canonical comparison form
// ============================================================================
// Lower-cased text with diacritical marks dropped: decompose (NFKD), remove
// combining marks, recompose. Pure and idempotent; both the extractor and the
// filter engine compare in this form.
// ============================================================================

// Normalize returns the canonical comparison form of text.
func Normalize(text string) string {
	// transform.Chain carries internal state, so build it per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		out = text
	}
	return strings.ToLower(out)
}
