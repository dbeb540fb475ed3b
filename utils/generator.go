package utils

import "time"

const invoiceNumberLayout = "20060102-150405"

// GenerateInvoiceNumber derives the human-facing invoice number from the
// generation instant, e.g. "INV-20251120-143005".
func GenerateInvoiceNumber(t time.Time) string {
	return "INV-" + t.Format(invoiceNumberLayout)
}
