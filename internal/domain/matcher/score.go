package matcher

// referenceConfidence is returned when normalized references are identical.
// Reference identity is definitive and bypasses every other signal.
const referenceConfidence = 1.0

// scoreInput bundles the comparable fields of one candidate pair. Source is
// the query record, target the candidate; the matchers fill both sides from
// whichever direction they search in.
type scoreInput struct {
	sourceAmount  float64
	sourceDate    string
	sourceContact *string
	sourceRef     *string
	targetAmount  float64
	targetDates   []string
	targetContact *string
	targetRef     *string
}

// score computes the normalized confidence for one candidate pair.
// Returns (confidence, true) when the candidate is acceptable, (0, false)
// when it is disqualified or below the confidence floor.
//
// The rules, in order:
//
//  1. Equal non-nil references are definitive: confidence 1.0, nothing
//     else consulted. References must be normalized by the caller.
//  2. Amount agreement is mandatory. No partial credit.
//  3. A name mismatch with both contacts populated disqualifies the pair
//     even when the dates agree, preventing same-day different-payer
//     collisions.
//  4. Otherwise points accumulate: date match and name match weigh equally,
//     plus a benefit-of-the-doubt bonus when the date matches and one side
//     simply has no recorded name. Confidence is points over the maximum,
//     accepted at MinConfidence or above.
func (m *Matcher) score(in scoreInput) (float64, bool) {
	if in.sourceRef != nil && in.targetRef != nil && *in.sourceRef == *in.targetRef {
		return referenceConfidence, true
	}

	if !m.config.AmountsMatch(in.sourceAmount, in.targetAmount) {
		return 0, false
	}

	dateMatches := false
	for _, d := range in.targetDates {
		if m.config.DatesWithinRange(in.sourceDate, d) {
			dateMatches = true
			break
		}
	}

	nameMatches := m.config.NamesMatch(in.sourceContact, in.targetContact)

	if in.sourceContact != nil && in.targetContact != nil && !nameMatches && dateMatches {
		return 0, false
	}

	points := 0
	if dateMatches {
		points += m.config.PointsDateMatch
	}
	if nameMatches {
		points += m.config.PointsNameMatch
	}
	if dateMatches && (in.sourceContact == nil || in.targetContact == nil) {
		points += m.config.PointsNullContactBonus
	}

	confidence := float64(points) / float64(m.config.maxPoints())
	if confidence >= m.config.MinConfidence {
		return confidence, true
	}

	return 0, false
}
