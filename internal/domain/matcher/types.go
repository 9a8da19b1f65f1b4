package matcher

// Config holds all matcher tunables. Every threshold and point weight the
// scoring algorithm uses lives here so it can be retuned without touching
// the algorithm itself.
type Config struct {
	// AmountTolerance is the absolute difference, in currency units, under
	// which two amounts are considered equal. Default: 0.01 (1 cent).
	AmountTolerance float64

	// DateToleranceDays is the banking processing delay tolerance.
	// Default: 1.
	DateToleranceDays int

	// MinSignificantWordLength filters out short legal-form words like
	// "Oy", "AB", "Tmi" before fuzzy name comparison. Default: 2.
	MinSignificantWordLength int

	// FuzzyWordLengthCutoff splits words into short (exact match required)
	// and long (fuzzy match allowed). Default: 6.
	FuzzyWordLengthCutoff int

	// FuzzyThresholdLong is the minimum similarity for words longer than
	// the cutoff. Default: 0.85 (tolerates ~15% character divergence).
	FuzzyThresholdLong float64

	// FuzzyThresholdShort is the minimum similarity for words at or under
	// the cutoff. Default: 1.0 (exact after case/trim normalization).
	FuzzyThresholdShort float64

	// Point weights for the confidence score. Confidence is points divided
	// by the sum of all three, so the defaults (2, 2, 1) put name-only
	// matches exactly at the 0.4 floor.
	PointsDateMatch        int
	PointsNameMatch        int
	PointsNullContactBonus int

	// MinConfidence is the acceptance floor for scored matches.
	// Default: 0.4.
	MinConfidence float64
}

// DefaultConfig returns the tuned production values.
func DefaultConfig() Config {
	return Config{
		AmountTolerance:          0.01,
		DateToleranceDays:        1,
		MinSignificantWordLength: 2,
		FuzzyWordLengthCutoff:    6,
		FuzzyThresholdLong:       0.85,
		FuzzyThresholdShort:      1.0,
		PointsDateMatch:          2,
		PointsNameMatch:          2,
		PointsNullContactBonus:   1,
		MinConfidence:            0.4,
	}
}

// maxPoints is the highest attainable score, used to normalize points into
// a confidence in [0, 1].
func (c Config) maxPoints() int {
	return c.PointsDateMatch + c.PointsNameMatch + c.PointsNullContactBonus
}

// How a match was established.
const (
	MatchedByReference = "reference"
	MatchedByScore     = "scored"
)

// MatchResult carries the confidence of a returned match plus diagnostics
// for audit logging. It never exists without a winning candidate.
type MatchResult struct {
	Confidence float64 // 0.0 - 1.0; exactly 1.0 for reference matches
	MatchedBy  string  // MatchedByReference or MatchedByScore

	// MatchedDate is the attachment date that produced the best score when
	// a transaction was found for a multi-dated attachment. Empty for
	// reference matches and for FindAttachment results.
	MatchedDate string
}
