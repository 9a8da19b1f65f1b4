package storage

import (
	"time"

	"github.com/google/uuid"

	"bankmatch/internal/reconciler"
)

// ReconciliationRun records one invocation of the engine over a dataset.
type ReconciliationRun struct {
	ID                     string    `json:"id"`
	StartedAt              time.Time `json:"started_at"`
	FinishedAt             time.Time `json:"finished_at"`
	TotalTransactions      int       `json:"total_transactions"`
	TotalAttachments       int       `json:"total_attachments"`
	MatchedTransactions    int       `json:"matched_transactions"`
	UnmatchedTransactions  int       `json:"unmatched_transactions"`
	UnexplainedAttachments int       `json:"unexplained_attachments"`
	DryRun                 bool      `json:"dry_run"`
}

// MatchOutcome is the per-transaction result within a run: the transaction
// fingerprint plus, when a match was found, what explained it and how
// confidently.
type MatchOutcome struct {
	ID            int64   `json:"id"`
	RunID         string  `json:"run_id"`
	TxDate        string  `json:"tx_date"`
	TxAmount      float64 `json:"tx_amount"`
	TxContact     string  `json:"tx_contact,omitempty"`
	TxReference   string  `json:"tx_reference,omitempty"`
	Matched       bool    `json:"matched"`
	MatchedBy     string  `json:"matched_by,omitempty"`
	Confidence    float64 `json:"confidence"`
	Counterparty  string  `json:"counterparty,omitempty"`
	AttachmentRef string  `json:"attachment_reference,omitempty"`
}

// NewRunFromReport converts a reconciler report into persistable records.
func NewRunFromReport(report *reconciler.Report, startedAt time.Time, dryRun bool) (*ReconciliationRun, []*MatchOutcome) {
	run := &ReconciliationRun{
		ID:                     uuid.NewString(),
		StartedAt:              startedAt,
		FinishedAt:             time.Now().UTC(),
		TotalTransactions:      report.Summary.TotalTransactions,
		TotalAttachments:       report.Summary.TotalAttachments,
		MatchedTransactions:    report.Summary.MatchedTransactions,
		UnmatchedTransactions:  report.Summary.UnmatchedTransactions,
		UnexplainedAttachments: report.Summary.UnexplainedAttachments,
		DryRun:                 dryRun,
	}

	outcomes := make([]*MatchOutcome, 0, len(report.Matched)+len(report.UnmatchedTransactions))

	for _, pair := range report.Matched {
		o := &MatchOutcome{
			RunID:      run.ID,
			TxDate:     pair.Transaction.Date,
			TxAmount:   pair.Transaction.Amount,
			Matched:    true,
			MatchedBy:  pair.MatchedBy,
			Confidence: pair.Confidence,
		}
		if pair.Transaction.Contact != nil {
			o.TxContact = *pair.Transaction.Contact
		}
		if pair.Transaction.Reference != nil {
			o.TxReference = *pair.Transaction.Reference
		}
		if supplier := pair.Attachment.Data.Supplier; supplier != nil {
			o.Counterparty = *supplier
		} else if recipient := pair.Attachment.Data.Recipient; recipient != nil {
			o.Counterparty = *recipient
		}
		if pair.Attachment.Data.Reference != nil {
			o.AttachmentRef = *pair.Attachment.Data.Reference
		}
		outcomes = append(outcomes, o)
	}

	for _, tx := range report.UnmatchedTransactions {
		o := &MatchOutcome{
			RunID:    run.ID,
			TxDate:   tx.Date,
			TxAmount: tx.Amount,
		}
		if tx.Contact != nil {
			o.TxContact = *tx.Contact
		}
		if tx.Reference != nil {
			o.TxReference = *tx.Reference
		}
		outcomes = append(outcomes, o)
	}

	return run, outcomes
}
