package dto

import "bankmatch/internal/domain"

// MatchAttachmentRequest asks for the attachment best explaining one
// transaction out of the supplied candidates.
type MatchAttachmentRequest struct {
	Transaction domain.Transaction   `json:"transaction"`
	Attachments []*domain.Attachment `json:"attachments"`
}

// MatchTransactionRequest is the mirror direction.
type MatchTransactionRequest struct {
	Attachment   domain.Attachment     `json:"attachment"`
	Transactions []*domain.Transaction `json:"transactions"`
}

// ReconcileRequest runs the engine over both collections. DryRun skips
// persisting the run.
type ReconcileRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
	Attachments  []*domain.Attachment `json:"attachments"`
	DryRun       bool                 `json:"dry_run"`
}
