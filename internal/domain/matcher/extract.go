package matcher

import "bankmatch/internal/domain"

// Counterparty extracts the counterparty name from an attachment: the
// supplier (vendor) for purchase invoices and receipts, the recipient
// (customer) for sales invoices. Supplier takes precedence when both are
// present. Nil when the document names neither.
func Counterparty(att domain.Attachment) *string {
	if att.Data.Supplier != nil {
		return att.Data.Supplier
	}
	return att.Data.Recipient
}

// AttachmentDates collects the comparable dates an attachment exposes, in
// fixed order: invoicing date, due date, receiving date. Absent fields are
// omitted; the result may be empty.
func AttachmentDates(att domain.Attachment) []string {
	var dates []string
	for _, d := range []*string{att.Data.InvoicingDate, att.Data.DueDate, att.Data.ReceivingDate} {
		if d != nil {
			dates = append(dates, *d)
		}
	}
	return dates
}

// DirectionCompatible reports whether a transaction's sign is consistent
// with an attachment's declared counterparty role: outgoing payments need a
// supplier, incoming payments need a recipient. An attachment naming
// neither is incompatible with everything.
func DirectionCompatible(txAmount float64, att domain.Attachment) bool {
	if txAmount < 0 {
		return att.Data.Supplier != nil
	}
	return att.Data.Recipient != nil
}
