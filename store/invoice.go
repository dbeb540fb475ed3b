package store

import (
	"sort"
	"time"

	"github.com/nkamau743/driving_school/models"
	"github.com/nkamau743/driving_school/utils"
)

// GenerateInvoice drafts an invoice over every completed, uninvoiced lesson
// of the candidate and links those lessons to it. Selection and linking run
// under one write lock so two concurrent generations can never bill the same
// lesson twice.
func (s *Store) GenerateInvoice(candidateID int) (models.Invoice, []models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, ok := s.accounts[candidateID]
	if !ok || candidate.Role != models.RoleCandidate {
		return models.Invoice{}, nil, ErrCandidateNotFound
	}

	var selected []*models.Lesson
	for _, l := range s.lessons {
		if l.CandidateID == candidateID && l.Status == models.StatusCompleted && l.InvoiceID == nil {
			selected = append(selected, l)
		}
	}
	if len(selected) == 0 {
		return models.Invoice{}, nil, ErrNothingToInvoice
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].ID < selected[j].ID })

	total := 0
	for _, l := range selected {
		total += l.Price
	}

	now := time.Now()
	s.invoiceSeq++
	invoice := &models.Invoice{
		ID:            s.invoiceSeq,
		InvoiceNumber: utils.GenerateInvoiceNumber(now),
		CandidateID:   candidateID,
		CandidateName: candidate.FullName,
		TotalAmount:   total,
		Status:        models.InvoiceStatusDraft,
		CreatedAt:     now,
	}
	s.invoices[invoice.ID] = invoice

	linked := make([]models.Lesson, 0, len(selected))
	for _, l := range selected {
		id := invoice.ID
		l.InvoiceID = &id
		linked = append(linked, *l)
	}
	return *invoice, linked, nil
}

func (s *Store) Invoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		result = append(result, *inv)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
