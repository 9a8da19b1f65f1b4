package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankmatch/internal/domain"
	"bankmatch/internal/domain/matcher"
)

func strPtr(s string) *string {
	return &s
}

func TestReconcile(t *testing.T) {
	r := New(matcher.NewMatcher(matcher.DefaultConfig()))

	transactions := []domain.Transaction{
		{Reference: strPtr("RF135550001114"), Date: "2024-06-15", Amount: -100.0, Contact: strPtr("Acme Oy")},
		{Date: "2024-06-20", Amount: -42.5, Contact: strPtr("Best Supplies")},
		{Date: "2024-06-25", Amount: -77.0, Contact: strPtr("Nobody Known")},
	}
	attachments := []*domain.Attachment{
		{
			Type: "invoice",
			Data: domain.AttachmentData{Reference: strPtr("RF135550001114"), TotalAmount: 100.0, Supplier: strPtr("Acme Oy")},
		},
		{
			Type: "receipt",
			Data: domain.AttachmentData{Supplier: strPtr("Best Supplies EMEA"), TotalAmount: 42.5, ReceivingDate: strPtr("2024-06-20")},
		},
		{
			Type: "invoice",
			Data: domain.AttachmentData{Supplier: strPtr("Unrelated Vendor"), TotalAmount: 500.0, InvoicingDate: strPtr("2024-01-01")},
		},
	}

	report := r.Reconcile(transactions, attachments)

	require.Len(t, report.Matched, 2)
	assert.Equal(t, matcher.MatchedByReference, report.Matched[0].MatchedBy)
	assert.Equal(t, 1.0, report.Matched[0].Confidence)
	assert.Equal(t, matcher.MatchedByScore, report.Matched[1].MatchedBy)
	assert.InDelta(t, 0.8, report.Matched[1].Confidence, 1e-9)

	require.Len(t, report.UnmatchedTransactions, 1)
	assert.Equal(t, -77.0, report.UnmatchedTransactions[0].Amount)

	require.Len(t, report.UnmatchedAttachments, 1)
	require.NotNil(t, report.UnmatchedAttachments[0].Data.Supplier)
	assert.Equal(t, "Unrelated Vendor", *report.UnmatchedAttachments[0].Data.Supplier)

	assert.Equal(t, 3, report.Summary.TotalTransactions)
	assert.Equal(t, 3, report.Summary.TotalAttachments)
	assert.Equal(t, 2, report.Summary.MatchedTransactions)
	assert.Equal(t, 1, report.Summary.UnmatchedTransactions)
	assert.Equal(t, 1, report.Summary.UnexplainedAttachments)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	r := New(matcher.NewMatcher(matcher.DefaultConfig()))

	report := r.Reconcile(nil, nil)

	assert.Empty(t, report.Matched)
	assert.Empty(t, report.UnmatchedTransactions)
	assert.Empty(t, report.UnmatchedAttachments)
	assert.Equal(t, 0, report.Summary.TotalTransactions)
}
