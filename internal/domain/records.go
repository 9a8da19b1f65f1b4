// Package domain defines the record shapes the reconciliation engine
// consumes: bank transactions on one side, document attachments (sales
// invoices, purchase invoices, receipts) on the other.
//
// Both shapes are read-only inputs. Optional fields are pointers so that
// "absent" survives a JSON round-trip without being confused with the
// zero value.
package domain

// Transaction is a single bank transaction as observed on a statement.
// Amount sign encodes direction: negative = outgoing, positive = incoming.
type Transaction struct {
	Reference *string `json:"reference"`
	Date      string  `json:"date"` // ISO date, YYYY-MM-DD
	Amount    float64 `json:"amount"`
	Contact   *string `json:"contact"`
}

// Attachment wraps a parsed document. Type is informational only
// ("invoice", "receipt"); the engine branches on the Data fields instead.
type Attachment struct {
	Type string         `json:"type"`
	Data AttachmentData `json:"data"`
}

// AttachmentData is the parsed payload of a document. Which fields are
// present depends on the document kind:
//
//   - purchase invoices and receipts carry Supplier (vendor)
//   - sales invoices carry Recipient (customer)
//   - invoices carry InvoicingDate and/or DueDate, receipts ReceivingDate
//
// TotalAmount is always non-negative; direction is implied by which
// counterparty field is present.
type AttachmentData struct {
	Reference     *string `json:"reference,omitempty"`
	TotalAmount   float64 `json:"total_amount"`
	InvoicingDate *string `json:"invoicing_date,omitempty"`
	DueDate       *string `json:"due_date,omitempty"`
	ReceivingDate *string `json:"receiving_date,omitempty"`
	Supplier      *string `json:"supplier,omitempty"`
	Recipient     *string `json:"recipient,omitempty"`
}
