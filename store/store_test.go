package store

import (
	"testing"

	"github.com/nkamau743/driving_school/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrice = 55

func testStore() *Store {
	accounts := []models.Account{
		{ID: 1, FullName: "Kevin Omondi", Email: "kevin@example.com", Role: models.RoleCandidate},
		{ID: 2, FullName: "Daniel Mwangi", Email: "daniel@example.com", Role: models.RoleInstructor},
		{ID: 3, FullName: "Pauline Karanja", Email: "admin@example.com", Role: models.RoleAdmin},
		{ID: 4, FullName: "Alice Njeri", Email: "alice@example.com", Role: models.RoleCandidate},
	}
	profiles := []models.InstructorProfile{
		{ID: 2, FullName: "Daniel Mwangi", Transmission: "Manual", Slots: []string{"09:00", "10:00", "11:00", "14:00"}},
	}
	return New(accounts, profiles)
}

func TestAvailableSlots(t *testing.T) {
	s := testStore()

	slots, err := s.AvailableSlots(2, "2025-11-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "14:00"}, slots)

	_, err = s.AvailableSlots(99, "2025-11-20")
	assert.ErrorIs(t, err, ErrInstructorNotFound)
}

func TestAvailableSlotsSubtractsBookedTimes(t *testing.T) {
	s := testStore()

	_, err := s.BookLesson(1, 2, "2025-11-20", "10:00", "", "", testPrice)
	require.NoError(t, err)

	slots, err := s.AvailableSlots(2, "2025-11-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "14:00"}, slots)

	// a different date is unaffected
	slots, err = s.AvailableSlots(2, "2025-11-21")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "14:00"}, slots)
}

func TestAvailableSlotsIgnoresCancelledLessons(t *testing.T) {
	s := testStore()

	lesson, err := s.BookLesson(1, 2, "2025-11-20", "10:00", "", "", testPrice)
	require.NoError(t, err)
	s.lessons[lesson.ID].Status = models.StatusCancelled

	slots, err := s.AvailableSlots(2, "2025-11-20")
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
}

func TestBookLessonDefaults(t *testing.T) {
	s := testStore()

	lesson, err := s.BookLesson(1, 2, "2025-11-20", "09:00", "", "", testPrice)
	require.NoError(t, err)
	assert.Equal(t, 1, lesson.ID)
	assert.Equal(t, models.StatusBooked, lesson.Status)
	assert.Equal(t, models.DefaultLessonType, lesson.LessonType)
	assert.Equal(t, models.DefaultPickupLocation, lesson.PickupLocation)
	assert.Equal(t, testPrice, lesson.Price)
	assert.Nil(t, lesson.InvoiceID)

	lesson, err = s.BookLesson(1, 2, "2025-11-20", "10:00", "Motorway", "Westlands Mall", testPrice)
	require.NoError(t, err)
	assert.Equal(t, 2, lesson.ID)
	assert.Equal(t, "Motorway", lesson.LessonType)
	assert.Equal(t, "Westlands Mall", lesson.PickupLocation)
}

func TestBookLessonClash(t *testing.T) {
	s := testStore()

	_, err := s.BookLesson(1, 2, "2025-11-20", "11:00", "", "", testPrice)
	require.NoError(t, err)

	_, err = s.BookLesson(4, 2, "2025-11-20", "11:00", "", "", testPrice)
	assert.ErrorIs(t, err, ErrSlotTaken)

	// the same time on another date is fine
	_, err = s.BookLesson(4, 2, "2025-11-21", "11:00", "", "", testPrice)
	assert.NoError(t, err)
}

func TestBookLessonCancelledSlotIsRebookable(t *testing.T) {
	s := testStore()

	lesson, err := s.BookLesson(1, 2, "2025-11-20", "11:00", "", "", testPrice)
	require.NoError(t, err)
	s.lessons[lesson.ID].Status = models.StatusCancelled

	_, err = s.BookLesson(4, 2, "2025-11-20", "11:00", "", "", testPrice)
	assert.NoError(t, err)
}

func TestBookLessonValidation(t *testing.T) {
	s := testStore()

	_, err := s.BookLesson(1, 99, "2025-11-20", "09:00", "", "", testPrice)
	assert.ErrorIs(t, err, ErrInstructorNotFound)

	_, err = s.BookLesson(1, 2, "2025-11-20", "23:30", "", "", testPrice)
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestLessonsFiltersAndEnrichment(t *testing.T) {
	s := testStore()

	_, err := s.BookLesson(1, 2, "2025-11-20", "09:00", "", "", testPrice)
	require.NoError(t, err)
	_, err = s.BookLesson(4, 2, "2025-11-20", "10:00", "", "", testPrice)
	require.NoError(t, err)
	_, err = s.BookLesson(1, 2, "2025-11-21", "09:00", "", "", testPrice)
	require.NoError(t, err)

	byCandidate := s.Lessons(LessonFilter{CandidateID: 1})
	require.Len(t, byCandidate, 2)
	for _, l := range byCandidate {
		assert.Equal(t, 1, l.CandidateID)
	}
	assert.Equal(t, "Kevin Omondi", byCandidate[0].CandidateName)
	assert.Equal(t, "Daniel Mwangi", byCandidate[0].InstructorName)

	// filters intersect
	narrowed := s.Lessons(LessonFilter{CandidateID: 1, Date: "2025-11-21"})
	require.Len(t, narrowed, 1)
	assert.Equal(t, "2025-11-21", narrowed[0].Date)

	completed := s.Lessons(LessonFilter{Status: string(models.StatusCompleted)})
	assert.Empty(t, completed)
}

func TestLessonsUnknownNameFallback(t *testing.T) {
	s := testStore()

	// candidate ids come from tokens, not the directory, so the ledger can
	// hold ids the directory cannot resolve
	_, err := s.BookLesson(42, 2, "2025-11-20", "09:00", "", "", testPrice)
	require.NoError(t, err)

	lessons := s.Lessons(LessonFilter{})
	require.Len(t, lessons, 1)
	assert.Equal(t, "Unknown", lessons[0].CandidateName)
	assert.Equal(t, "Daniel Mwangi", lessons[0].InstructorName)
}

func TestCompleteLesson(t *testing.T) {
	s := testStore()

	lesson, err := s.BookLesson(1, 2, "2025-11-20", "09:00", "", "", testPrice)
	require.NoError(t, err)

	updated, err := s.CompleteLesson(lesson.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	// re-completing is accepted silently
	updated, err = s.CompleteLesson(lesson.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	_, err = s.CompleteLesson(999, 2)
	assert.ErrorIs(t, err, ErrLessonNotFound)

	_, err = s.CompleteLesson(lesson.ID, 7)
	assert.ErrorIs(t, err, ErrNotLessonOwner)
}

func TestAddFeedbackCompletesLesson(t *testing.T) {
	s := testStore()

	lesson, err := s.BookLesson(1, 2, "2025-11-20", "09:00", "", "", testPrice)
	require.NoError(t, err)

	updated, fb, err := s.AddFeedback(lesson.ID, 2, 4, "Good clutch control")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, 4, fb.Rating)
	assert.Equal(t, "Good clutch control", fb.Comments)
	assert.Equal(t, lesson.ID, fb.LessonID)
	assert.Equal(t, 2, fb.InstructorID)

	_, _, err = s.AddFeedback(999, 2, 4, "")
	assert.ErrorIs(t, err, ErrLessonNotFound)

	_, _, err = s.AddFeedback(lesson.ID, 7, 4, "")
	assert.ErrorIs(t, err, ErrNotLessonOwner)
}

func TestAddFeedbackAllowsMultiplePerLesson(t *testing.T) {
	s := testStore()

	lesson, err := s.BookLesson(1, 2, "2025-11-20", "09:00", "", "", testPrice)
	require.NoError(t, err)

	_, _, err = s.AddFeedback(lesson.ID, 2, 4, "first")
	require.NoError(t, err)
	_, _, err = s.AddFeedback(lesson.ID, 2, 5, "second")
	require.NoError(t, err)

	all := s.LessonFeedback(lesson.ID)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Comments)
	assert.Equal(t, "second", all[1].Comments)
}

func TestGenerateInvoice(t *testing.T) {
	s := testStore()

	l1, err := s.BookLesson(1, 2, "2025-11-20", "09:00", "", "", testPrice)
	require.NoError(t, err)
	l2, err := s.BookLesson(1, 2, "2025-11-20", "10:00", "", "", testPrice)
	require.NoError(t, err)
	_, err = s.BookLesson(1, 2, "2025-11-20", "11:00", "", "", testPrice)
	require.NoError(t, err)

	_, err = s.CompleteLesson(l1.ID, 2)
	require.NoError(t, err)
	_, err = s.CompleteLesson(l2.ID, 2)
	require.NoError(t, err)

	invoice, lessons, err := s.GenerateInvoice(1)
	require.NoError(t, err)
	assert.Equal(t, 1, invoice.ID)
	assert.Equal(t, models.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, "Kevin Omondi", invoice.CandidateName)
	assert.Regexp(t, `^INV-\d{8}-\d{6}$`, invoice.InvoiceNumber)

	// only the completed, uninvoiced lessons are billed, and the total is
	// exactly their sum
	require.Len(t, lessons, 2)
	total := 0
	for _, l := range lessons {
		require.NotNil(t, l.InvoiceID)
		assert.Equal(t, invoice.ID, *l.InvoiceID)
		total += l.Price
	}
	assert.Equal(t, total, invoice.TotalAmount)

	assert.Len(t, s.Invoices(), 1)
}

func TestGenerateInvoiceTwiceFails(t *testing.T) {
	s := testStore()

	lesson, err := s.BookLesson(1, 2, "2025-11-20", "09:00", "", "", testPrice)
	require.NoError(t, err)
	_, err = s.CompleteLesson(lesson.ID, 2)
	require.NoError(t, err)

	_, _, err = s.GenerateInvoice(1)
	require.NoError(t, err)

	_, _, err = s.GenerateInvoice(1)
	assert.ErrorIs(t, err, ErrNothingToInvoice)

	// a lesson completed afterwards opens a fresh billing cycle
	next, err := s.BookLesson(1, 2, "2025-11-21", "09:00", "", "", testPrice)
	require.NoError(t, err)
	_, err = s.CompleteLesson(next.ID, 2)
	require.NoError(t, err)

	invoice, lessons, err := s.GenerateInvoice(1)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, next.ID, lessons[0].ID)
	assert.Equal(t, testPrice, invoice.TotalAmount)
}

func TestGenerateInvoiceValidation(t *testing.T) {
	s := testStore()

	_, _, err := s.GenerateInvoice(99)
	assert.ErrorIs(t, err, ErrCandidateNotFound)

	// an instructor id is not a candidate
	_, _, err = s.GenerateInvoice(2)
	assert.ErrorIs(t, err, ErrCandidateNotFound)

	// a known candidate with nothing completed
	_, _, err = s.GenerateInvoice(1)
	assert.ErrorIs(t, err, ErrNothingToInvoice)
}
