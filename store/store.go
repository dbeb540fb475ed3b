package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/nkamau743/driving_school/models"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrNotLessonOwner     = errors.New("you are not the instructor for this lesson")
	ErrSlotNotOffered     = errors.New("this instructor does not offer that time slot")
	ErrSlotTaken          = errors.New("slot already booked")
	ErrNothingToInvoice   = errors.New("no completed lessons to invoice")
)

// Store holds every record in memory. One lock covers the whole store: the
// clash check plus append in BookLesson and the select-then-link sequence in
// GenerateInvoice must each run as a single critical section, and the id
// counters advance inside the same section as the insert they belong to.
type Store struct {
	mu sync.RWMutex

	accounts map[int]models.Account
	profiles map[int]models.InstructorProfile

	lessons  map[int]*models.Lesson
	feedback map[int]*models.Feedback
	invoices map[int]*models.Invoice

	lessonSeq   int
	feedbackSeq int
	invoiceSeq  int
}

// New builds a store around the fixed account and instructor directories.
// The directories are read-only for the store's lifetime.
func New(accounts []models.Account, profiles []models.InstructorProfile) *Store {
	s := &Store{
		accounts: make(map[int]models.Account, len(accounts)),
		profiles: make(map[int]models.InstructorProfile, len(profiles)),
		lessons:  make(map[int]*models.Lesson),
		feedback: make(map[int]*models.Feedback),
		invoices: make(map[int]*models.Invoice),
	}
	for _, a := range accounts {
		s.accounts[a.ID] = a
	}
	for _, p := range profiles {
		s.profiles[p.ID] = p
	}
	return s
}

func (s *Store) Account(id int) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.accounts[id]; ok {
		return a, nil
	}
	return models.Account{}, ErrAccountNotFound
}

func (s *Store) AccountByEmail(email string) (models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Account{}, ErrAccountNotFound
}

func (s *Store) Instructor(id int) (models.InstructorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.profiles[id]; ok {
		return p, nil
	}
	return models.InstructorProfile{}, ErrInstructorNotFound
}

func (s *Store) Instructors() []models.InstructorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]models.InstructorProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles
}

// displayName resolves an account id for lesson enrichment. Callers hold at
// least the read lock.
func (s *Store) displayName(id int) string {
	if a, ok := s.accounts[id]; ok {
		return a.FullName
	}
	return "Unknown"
}
