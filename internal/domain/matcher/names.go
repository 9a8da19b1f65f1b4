package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// NamesMatch decides whether two counterparty names denote the same entity.
//
// Two strategies, tried in order:
//
//  1. Substring containment after trim + case-fold. Covers legal-suffix
//     variants like "Best Supplies" vs "Best Supplies EMEA".
//  2. Per-word fuzzy comparison. Words of length ≤ MinSignificantWordLength
//     are dropped from both sides; every remaining word of the shorter side
//     must reach its similarity threshold against some word of the longer
//     side. Short words require an exact hit, long words tolerate ~15%
//     edit distance.
//
// Requiring every significant word to match is what keeps
// "Matti Meikäläinen" from matching "Matti Meittiläinen": the first names
// agree but the surnames are only 75% similar.
//
// A nil name on either side never matches.
func (c Config) NamesMatch(n1, n2 *string) bool {
	if n1 == nil || n2 == nil {
		return false
	}

	a := strings.ToLower(strings.TrimSpace(*n1))
	b := strings.ToLower(strings.TrimSpace(*n2))

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	wordsA := c.significantWords(a)
	wordsB := c.significantWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	shorter, longer := wordsA, wordsB
	if len(wordsB) < len(wordsA) {
		shorter, longer = wordsB, wordsA
	}

	for _, word := range shorter {
		best := 0.0
		for _, candidate := range longer {
			if s := wordSimilarity(word, candidate); s > best {
				best = s
			}
		}

		threshold := c.FuzzyThresholdShort
		if utf8.RuneCountInString(word) > c.FuzzyWordLengthCutoff {
			threshold = c.FuzzyThresholdLong
		}

		if best < threshold {
			return false
		}
	}

	return true
}

// significantWords splits a normalized name into words worth comparing,
// discarding short legal-form abbreviations and initials ("Oy", "AB").
func (c Config) significantWords(name string) []string {
	var words []string
	for _, w := range strings.Fields(name) {
		if utf8.RuneCountInString(w) > c.MinSignificantWordLength {
			words = append(words, w)
		}
	}
	return words
}

// wordSimilarity is 1 − editDistance/maxLen over runes, so accented
// characters count as single edits.
func wordSimilarity(w1, w2 string) float64 {
	maxLen := utf8.RuneCountInString(w1)
	if n := utf8.RuneCountInString(w2); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(w1, w2))/float64(maxLen)
}
