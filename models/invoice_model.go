package models

import "time"

const InvoiceStatusDraft = "DRAFT"

// Invoice aggregates a candidate's completed, uninvoiced lessons. It is
// immutable once created; linkage lives on the Lesson side (InvoiceID).
type Invoice struct {
	ID            int       `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	CandidateID   int       `json:"candidateId"`
	CandidateName string    `json:"candidateName"`
	TotalAmount   int       `json:"totalAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
