// Package reconciler runs the matching engine over whole collections and
// summarizes the outcome. It is a thin batch convenience for the CLI and
// API callers; the per-pair decisions live entirely in the matcher.
package reconciler

import (
	"bankmatch/internal/domain"
	"bankmatch/internal/domain/matcher"
)

// MatchedPair records one transaction paired with its winning attachment.
type MatchedPair struct {
	Transaction domain.Transaction `json:"transaction"`
	Attachment  domain.Attachment  `json:"attachment"`
	Confidence  float64            `json:"confidence"`
	MatchedBy   string             `json:"matched_by"`
}

// Summary carries the headline counts of a reconciliation run.
type Summary struct {
	TotalTransactions      int `json:"total_transactions"`
	TotalAttachments       int `json:"total_attachments"`
	MatchedTransactions    int `json:"matched_transactions"`
	UnmatchedTransactions  int `json:"unmatched_transactions"`
	UnexplainedAttachments int `json:"unexplained_attachments"`
}

// Report is the full outcome of reconciling two collections. An unmatched
// transaction may mean no candidate cleared the confidence floor or that the
// top candidates tied; the engine reports both the same way.
type Report struct {
	Summary               Summary              `json:"summary"`
	Matched               []MatchedPair        `json:"matched"`
	UnmatchedTransactions []domain.Transaction `json:"unmatched_transactions"`
	UnmatchedAttachments  []domain.Attachment  `json:"unmatched_attachments"`
}

// Reconciler pairs every transaction in a collection with its best
// attachment.
type Reconciler struct {
	matcher *matcher.Matcher
}

// New creates a reconciler around the given matcher.
func New(m *matcher.Matcher) *Reconciler {
	return &Reconciler{matcher: m}
}

// Reconcile runs the engine once per transaction against the full
// attachment list and collates the results. Neither input is mutated; each
// query sees every attachment, so two transactions may claim the same
// document; deduplication is a caller policy, not an engine rule.
func (r *Reconciler) Reconcile(transactions []domain.Transaction, attachments []*domain.Attachment) *Report {
	report := &Report{
		Summary: Summary{
			TotalTransactions: len(transactions),
			TotalAttachments:  len(attachments),
		},
		Matched:               make([]MatchedPair, 0),
		UnmatchedTransactions: make([]domain.Transaction, 0),
		UnmatchedAttachments:  make([]domain.Attachment, 0),
	}

	claimed := make(map[*domain.Attachment]bool)

	for _, tx := range transactions {
		att, result := r.matcher.FindAttachment(tx, attachments)
		if att == nil {
			report.UnmatchedTransactions = append(report.UnmatchedTransactions, tx)
			continue
		}

		claimed[att] = true
		report.Matched = append(report.Matched, MatchedPair{
			Transaction: tx,
			Attachment:  *att,
			Confidence:  result.Confidence,
			MatchedBy:   result.MatchedBy,
		})
	}

	for _, att := range attachments {
		if !claimed[att] {
			report.UnmatchedAttachments = append(report.UnmatchedAttachments, *att)
		}
	}

	report.Summary.MatchedTransactions = len(report.Matched)
	report.Summary.UnmatchedTransactions = len(report.UnmatchedTransactions)
	report.Summary.UnexplainedAttachments = len(report.UnmatchedAttachments)

	return report
}
