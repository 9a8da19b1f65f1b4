// Package matcher pairs bank transactions with the document attachments
// (sales invoices, purchase invoices, receipts) that explain them.
//
// Matching runs in two passes. A deterministic reference pass first: equal
// normalized payment references settle the question immediately. Failing
// that, a scored pass weighs amount, date, and fuzzy counterparty-name
// agreement into a confidence in [0, 1] and applies an ambiguity rule:
// two candidates tied at the top confidence means no match is reported at
// all, because a guess between equally plausible documents is worse than
// no answer.
//
// The engine is purely functional: no I/O, no shared state, inputs never
// mutated. Concurrent calls need no coordination.
//
// Example usage:
//
//	m := matcher.NewMatcher(matcher.DefaultConfig())
//	att, result := m.FindAttachment(tx, attachments)
//	if att != nil {
//		// result.Confidence explains how strong the pairing is
//	}
package matcher

import (
	"sort"

	"bankmatch/internal/domain"
)

// Matcher finds the best corresponding record across the two collections.
type Matcher struct {
	config Config
}

// NewMatcher creates a matcher with the given config.
func NewMatcher(config Config) *Matcher {
	return &Matcher{config: config}
}

// FindAttachment returns the attachment best explaining a transaction, or
// nil when no candidate is confident enough or the top candidates tie.
// The returned attachment is one of the supplied candidates, not a copy.
func (m *Matcher) FindAttachment(tx domain.Transaction, attachments []*domain.Attachment) (*domain.Attachment, *MatchResult) {
	txRef := NormalizeReference(tx.Reference)

	// First pass: reference identity. First list-order hit wins and skips
	// direction and ambiguity checks entirely.
	if txRef != nil {
		for _, att := range attachments {
			attRef := NormalizeReference(att.Data.Reference)
			if attRef != nil && *attRef == *txRef {
				return att, &MatchResult{Confidence: referenceConfidence, MatchedBy: MatchedByReference}
			}
		}
	}

	// Second pass: multi-signal scoring.
	type candidate struct {
		att        *domain.Attachment
		confidence float64
	}
	var candidates []candidate

	for _, att := range attachments {
		if !DirectionCompatible(tx.Amount, *att) {
			continue
		}

		confidence, ok := m.score(scoreInput{
			sourceAmount:  tx.Amount,
			sourceDate:    tx.Date,
			sourceContact: tx.Contact,
			targetAmount:  att.Data.TotalAmount,
			targetDates:   AttachmentDates(*att),
			targetContact: Counterparty(*att),
		})
		if ok {
			candidates = append(candidates, candidate{att: att, confidence: confidence})
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].confidence > candidates[j].confidence
	})

	// Equally plausible top candidates are ambiguous; never break the tie.
	if len(candidates) > 1 && candidates[0].confidence == candidates[1].confidence {
		return nil, nil
	}

	return candidates[0].att, &MatchResult{Confidence: candidates[0].confidence, MatchedBy: MatchedByScore}
}

// FindTransaction returns the transaction best explaining an attachment.
// Mirror of FindAttachment: same two passes, same ambiguity rule. An
// attachment exposing several dates is scored once per date against each
// candidate, keeping only the best result per transaction; an attachment
// with no dates has no basis for scoring and yields nil.
func (m *Matcher) FindTransaction(att domain.Attachment, transactions []*domain.Transaction) (*domain.Transaction, *MatchResult) {
	attRef := NormalizeReference(att.Data.Reference)
	attDates := AttachmentDates(att)
	attContact := Counterparty(att)

	if attRef != nil {
		for _, tx := range transactions {
			txRef := NormalizeReference(tx.Reference)
			if txRef != nil && *txRef == *attRef {
				return tx, &MatchResult{Confidence: referenceConfidence, MatchedBy: MatchedByReference}
			}
		}
	}

	if len(attDates) == 0 {
		return nil, nil
	}

	type candidate struct {
		tx         *domain.Transaction
		confidence float64
		date       string
	}
	var candidates []candidate

	for _, tx := range transactions {
		if !DirectionCompatible(tx.Amount, att) {
			continue
		}

		best := candidate{}
		found := false
		for _, date := range attDates {
			confidence, ok := m.score(scoreInput{
				sourceAmount:  att.Data.TotalAmount,
				sourceDate:    date,
				sourceContact: attContact,
				targetAmount:  tx.Amount,
				targetDates:   []string{tx.Date},
				targetContact: tx.Contact,
			})
			if ok && (!found || confidence > best.confidence) {
				best = candidate{tx: tx, confidence: confidence, date: date}
				found = true
			}
		}
		if found {
			candidates = append(candidates, best)
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].confidence > candidates[j].confidence
	})

	if len(candidates) > 1 && candidates[0].confidence == candidates[1].confidence {
		return nil, nil
	}

	top := candidates[0]
	return top.tx, &MatchResult{Confidence: top.confidence, MatchedBy: MatchedByScore, MatchedDate: top.date}
}
