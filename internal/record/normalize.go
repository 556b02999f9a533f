package record

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeCall canonicalizes a callsign for storage and comparison:
// NFC normalization, surrounding whitespace trimmed, uppercased.
// The store matches on this normalized form only.
func NormalizeCall(call string) string {
	return strings.ToUpper(strings.TrimSpace(norm.NFC.String(call)))
}

// NormalizeText applies NFC normalization to a free-text field so that
// byte-level comparisons of stored values are stable across inputs that
// differ only in Unicode composition.
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}
