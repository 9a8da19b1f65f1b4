package dto

import (
	"time"

	"bankmatch/internal/domain"
	"bankmatch/internal/infrastructure/storage"
	"bankmatch/internal/reconciler"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthResponse creates a health response with the current time.
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// MatchAttachmentResponse reports the result of a single match query.
// Matched false means no candidate cleared the confidence floor or the top
// candidates tied; both are deliberate "no match" outcomes, not errors.
type MatchAttachmentResponse struct {
	Matched    bool               `json:"matched"`
	Attachment *domain.Attachment `json:"attachment,omitempty"`
	Confidence float64            `json:"confidence,omitempty"`
	MatchedBy  string             `json:"matched_by,omitempty"`
}

// MatchTransactionResponse is the mirror direction. MatchedDate is the
// attachment date that produced the best score, when relevant.
type MatchTransactionResponse struct {
	Matched     bool                `json:"matched"`
	Transaction *domain.Transaction `json:"transaction,omitempty"`
	Confidence  float64             `json:"confidence,omitempty"`
	MatchedBy   string              `json:"matched_by,omitempty"`
	MatchedDate string              `json:"matched_date,omitempty"`
}

// ReconcileResponse wraps a full reconciliation report. RunID is empty for
// dry runs, which are not persisted.
type ReconcileResponse struct {
	RunID  string             `json:"run_id,omitempty"`
	Report *reconciler.Report `json:"report"`
}

// RunResponse describes one persisted reconciliation run.
type RunResponse struct {
	Run      *storage.ReconciliationRun `json:"run"`
	Outcomes []*storage.MatchOutcome    `json:"outcomes,omitempty"`
}

// RunListResponse is returned when listing runs.
type RunListResponse struct {
	Runs  []*storage.ReconciliationRun `json:"runs"`
	Count int                          `json:"count"`
}
