package matcher

import (
	"strings"
	"unicode"
)

// NormalizeReference canonicalizes a payment reference for identity
// comparison: all whitespace is removed and leading zeros are stripped from
// the numeric part. A letter prefix (RF, FI) is preserved verbatim and only
// the remainder after it loses its zeros.
//
// Examples:
//
//	"9876 543 2103"          → "98765432103"
//	"0000 0000 5550 0011 14" → "5550001114"
//	"RF00012345"             → "RF12345"
//	"0000"                   → "0"
//
// Nil, empty, and all-whitespace references normalize to nil. The result is
// idempotent and is only ever compared by equality, never fuzzily.
func NormalizeReference(ref *string) *string {
	if ref == nil {
		return nil
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, *ref)

	if stripped == "" {
		return nil
	}

	runes := []rune(stripped)
	i := 0
	for i < len(runes) && unicode.IsLetter(runes[i]) {
		i++
	}

	if i == len(runes) {
		// All letters, nothing numeric to strip.
		return &stripped
	}

	if i > 0 {
		prefix := string(runes[:i])
		numeric := strings.TrimLeft(string(runes[i:]), "0")
		if numeric == "" {
			numeric = "0"
		}
		out := prefix + numeric
		return &out
	}

	out := strings.TrimLeft(stripped, "0")
	if out == "" {
		out = "0"
	}
	return &out
}
