package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankmatch/internal/domain"
)

func purchaseAttachment(supplier string, amount float64, invoicingDate string) *domain.Attachment {
	return &domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{
			Supplier:      strPtr(supplier),
			TotalAmount:   amount,
			InvoicingDate: strPtr(invoicingDate),
		},
	}
}

func TestFindAttachment_ReferenceMatch(t *testing.T) {
	// Arrange
	m := NewMatcher(DefaultConfig())
	tx := domain.Transaction{
		Reference: strPtr("RF135550001114"),
		Date:      "2024-06-15",
		Amount:    -100.0,
		Contact:   strPtr("Acme Oy"),
	}

	// Reference identity wins regardless of amount/date/contact values.
	referenced := &domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{
			Reference:     strPtr("RF135550001114"),
			TotalAmount:   9999.0,
			InvoicingDate: strPtr("2019-01-01"),
			Recipient:     strPtr("Someone Else"),
		},
	}
	attachments := []*domain.Attachment{
		purchaseAttachment("Acme Oy", 100.0, "2024-06-15"),
		referenced,
	}

	// Act
	got, result := m.FindAttachment(tx, attachments)

	// Assert
	require.NotNil(t, got)
	assert.Same(t, referenced, got)
	require.NotNil(t, result)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, MatchedByReference, result.MatchedBy)
}

func TestFindAttachment_ReferenceNormalizedBeforeComparison(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	tx := domain.Transaction{
		Reference: strPtr("0000 0000 5550 0011 14"),
		Date:      "2024-06-15",
		Amount:    -100.0,
	}

	referenced := &domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{Reference: strPtr("5550001114"), TotalAmount: 50.0},
	}

	got, result := m.FindAttachment(tx, []*domain.Attachment{referenced})

	require.NotNil(t, got)
	assert.Same(t, referenced, got)
	assert.Equal(t, MatchedByReference, result.MatchedBy)
}

func TestFindAttachment_ReferencePassTakesFirstInListOrder(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	tx := domain.Transaction{Reference: strPtr("RF12345"), Date: "2024-06-15", Amount: -100.0}

	first := &domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{Reference: strPtr("RF012345"), TotalAmount: 100.0},
	}
	second := &domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{Reference: strPtr("RF12345"), TotalAmount: 100.0},
	}

	// Duplicate normalized references are not treated as ambiguous; the
	// scan stops at the first hit.
	got, _ := m.FindAttachment(tx, []*domain.Attachment{first, second})

	require.NotNil(t, got)
	assert.Same(t, first, got)
}

func TestFindAttachment_ScoredMatch(t *testing.T) {
	// Arrange
	m := NewMatcher(DefaultConfig())
	tx := domain.Transaction{
		Date:    "2024-06-15",
		Amount:  -100.0,
		Contact: strPtr("Best Supplies"),
	}
	att := purchaseAttachment("Best Supplies EMEA", 100.0, "2024-06-15")

	// Act
	got, result := m.FindAttachment(tx, []*domain.Attachment{att})

	// Assert: date + name gives (2+2)/5 = 0.8
	require.NotNil(t, got)
	assert.Same(t, att, got)
	require.NotNil(t, result)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
	assert.Equal(t, MatchedByScore, result.MatchedBy)
}

func TestFindAttachment_TieIsAmbiguous(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	// No contact on the transaction: both candidates land on the same
	// date + null-contact score of 0.6.
	tx := domain.Transaction{Date: "2024-06-15", Amount: -100.0}
	attachments := []*domain.Attachment{
		purchaseAttachment("Vendor One", 100.0, "2024-06-15"),
		purchaseAttachment("Vendor Two", 100.0, "2024-06-15"),
	}

	got, result := m.FindAttachment(tx, attachments)

	assert.Nil(t, got)
	assert.Nil(t, result)
}

func TestFindAttachment_HigherConfidenceWinsOverLower(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	tx := domain.Transaction{Date: "2024-06-15", Amount: -100.0, Contact: strPtr("Best Supplies")}

	// 0.8 (date + name) vs 0.4 (name only, invoice dated far away)
	strong := purchaseAttachment("Best Supplies", 100.0, "2024-06-15")
	weak := purchaseAttachment("Best Supplies", 100.0, "2024-08-01")

	got, result := m.FindAttachment(tx, []*domain.Attachment{weak, strong})

	require.NotNil(t, got)
	assert.Same(t, strong, got)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
}

func TestFindAttachment_DirectionIncompatibleExcluded(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	// Incoming payment against a supplier-only attachment: excluded from
	// the scored pass entirely.
	tx := domain.Transaction{Date: "2024-06-15", Amount: 50.0, Contact: strPtr("Vendor")}
	att := purchaseAttachment("Vendor", 50.0, "2024-06-15")

	got, result := m.FindAttachment(tx, []*domain.Attachment{att})

	assert.Nil(t, got)
	assert.Nil(t, result)
}

func TestFindAttachment_EmptyCandidates(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	tx := domain.Transaction{Date: "2024-06-15", Amount: -100.0}

	got, result := m.FindAttachment(tx, nil)

	assert.Nil(t, got)
	assert.Nil(t, result)
}

func TestFindTransaction_ReferenceMatch(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	att := domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{Reference: strPtr("RF00012345"), TotalAmount: 100.0},
	}

	referenced := &domain.Transaction{Reference: strPtr("RF12345"), Date: "2024-06-15", Amount: -100.0}
	transactions := []*domain.Transaction{
		{Date: "2024-06-15", Amount: -100.0},
		referenced,
	}

	got, result := m.FindTransaction(att, transactions)

	require.NotNil(t, got)
	assert.Same(t, referenced, got)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Equal(t, MatchedByReference, result.MatchedBy)
}

func TestFindTransaction_BestDatePerCandidate(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	// Invoicing date misses, due date hits: the candidate is scored once
	// with its best date, not collected twice.
	att := domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{
			Supplier:      strPtr("Best Supplies"),
			TotalAmount:   100.0,
			InvoicingDate: strPtr("2024-06-15"),
			DueDate:       strPtr("2024-07-15"),
		},
	}
	tx := &domain.Transaction{Date: "2024-07-15", Amount: -100.0, Contact: strPtr("Best Supplies")}

	got, result := m.FindTransaction(att, []*domain.Transaction{tx})

	require.NotNil(t, got)
	assert.Same(t, tx, got)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
	assert.Equal(t, "2024-07-15", result.MatchedDate)
}

func TestFindTransaction_NoDatesSkipsScoredPass(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	att := domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{Supplier: strPtr("Best Supplies"), TotalAmount: 100.0},
	}
	tx := &domain.Transaction{Date: "2024-06-15", Amount: -100.0, Contact: strPtr("Best Supplies")}

	got, result := m.FindTransaction(att, []*domain.Transaction{tx})

	assert.Nil(t, got)
	assert.Nil(t, result)
}

func TestFindTransaction_TieIsAmbiguous(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	att := domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{
			Supplier:      strPtr("Best Supplies"),
			TotalAmount:   100.0,
			InvoicingDate: strPtr("2024-06-15"),
		},
	}
	transactions := []*domain.Transaction{
		{Date: "2024-06-15", Amount: -100.0, Contact: strPtr("Best Supplies")},
		{Date: "2024-06-16", Amount: -100.0, Contact: strPtr("Best Supplies")},
	}

	got, result := m.FindTransaction(att, transactions)

	assert.Nil(t, got)
	assert.Nil(t, result)
}

func TestFindTransaction_DirectionFilter(t *testing.T) {
	m := NewMatcher(DefaultConfig())

	// Sales invoice (recipient) cannot pair with an outgoing transaction.
	att := domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{
			Recipient:     strPtr("Customer Inc"),
			TotalAmount:   100.0,
			InvoicingDate: strPtr("2024-06-15"),
		},
	}
	outgoing := &domain.Transaction{Date: "2024-06-15", Amount: -100.0, Contact: strPtr("Customer Inc")}
	incoming := &domain.Transaction{Date: "2024-06-15", Amount: 100.0, Contact: strPtr("Customer Inc")}

	got, _ := m.FindTransaction(att, []*domain.Transaction{outgoing, incoming})

	require.NotNil(t, got)
	assert.Same(t, incoming, got)
}

func TestFindTransaction_EmptyCandidates(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	att := domain.Attachment{
		Type: "invoice",
		Data: domain.AttachmentData{Supplier: strPtr("Vendor"), TotalAmount: 100.0, InvoicingDate: strPtr("2024-06-15")},
	}

	got, result := m.FindTransaction(att, nil)

	assert.Nil(t, got)
	assert.Nil(t, result)
}

func TestFindAttachment_InputsNotMutated(t *testing.T) {
	m := NewMatcher(DefaultConfig())
	tx := domain.Transaction{Date: "2024-06-15", Amount: -100.0, Contact: strPtr("Best Supplies")}
	att := purchaseAttachment("Best Supplies", 100.0, "2024-06-15")
	original := *att

	_, _ = m.FindAttachment(tx, []*domain.Attachment{att})

	assert.Equal(t, original, *att)
}
