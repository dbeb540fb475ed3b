package store

import (
	"sort"

	"github.com/nkamau743/driving_school/models"
)

// AvailableSlots returns the instructor's slot menu minus the times of their
// non-cancelled lessons on the given date. The date is compared by exact
// string match and the profile's slot order is preserved. Recomputed on every
// call; the result is never cached.
func (s *Store) AvailableSlots(instructorID int, date string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[instructorID]
	if !ok {
		return nil, ErrInstructorNotFound
	}

	booked := make(map[string]bool)
	for _, l := range s.lessons {
		if l.InstructorID == instructorID && l.Date == date && l.Status != models.StatusCancelled {
			booked[l.Time] = true
		}
	}

	available := make([]string, 0, len(profile.Slots))
	for _, slot := range profile.Slots {
		if !booked[slot] {
			available = append(available, slot)
		}
	}
	return available, nil
}

// BookLesson creates a BOOKED lesson for the candidate. The clash check and
// the append happen under one write lock so two concurrent requests cannot
// both claim the same (instructor, date, time).
func (s *Store) BookLesson(candidateID, instructorID int, date, timeSlot, lessonType, pickupLocation string, price int) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[instructorID]
	if !ok {
		return models.Lesson{}, ErrInstructorNotFound
	}

	offered := false
	for _, slot := range profile.Slots {
		if slot == timeSlot {
			offered = true
			break
		}
	}
	if !offered {
		return models.Lesson{}, ErrSlotNotOffered
	}

	for _, l := range s.lessons {
		if l.InstructorID == instructorID && l.Date == date && l.Time == timeSlot && l.Status != models.StatusCancelled {
			return models.Lesson{}, ErrSlotTaken
		}
	}

	if lessonType == "" {
		lessonType = models.DefaultLessonType
	}
	if pickupLocation == "" {
		pickupLocation = models.DefaultPickupLocation
	}

	s.lessonSeq++
	lesson := &models.Lesson{
		ID:             s.lessonSeq,
		CandidateID:    candidateID,
		InstructorID:   instructorID,
		Date:           date,
		Time:           timeSlot,
		LessonType:     lessonType,
		PickupLocation: pickupLocation,
		Status:         models.StatusBooked,
		Price:          price,
	}
	s.lessons[lesson.ID] = lesson
	return *lesson, nil
}

// LessonFilter narrows a lesson listing. Zero values mean "no constraint";
// all set fields must match (AND semantics).
type LessonFilter struct {
	CandidateID  int
	InstructorID int
	Date         string
	Status       string
}

func (f LessonFilter) matches(l *models.Lesson) bool {
	if f.CandidateID != 0 && l.CandidateID != f.CandidateID {
		return false
	}
	if f.InstructorID != 0 && l.InstructorID != f.InstructorID {
		return false
	}
	if f.Date != "" && l.Date != f.Date {
		return false
	}
	if f.Status != "" && string(l.Status) != f.Status {
		return false
	}
	return true
}

// Lessons returns matching lessons enriched with display names, ordered by id.
func (s *Store) Lessons(filter LessonFilter) []models.EnrichedLesson {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.EnrichedLesson, 0)
	for _, l := range s.lessons {
		if !filter.matches(l) {
			continue
		}
		result = append(result, models.EnrichedLesson{
			Lesson:         *l,
			CandidateName:  s.displayName(l.CandidateID),
			InstructorName: s.displayName(l.InstructorID),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// CompleteLesson marks the lesson COMPLETED. Only the lesson's own instructor
// may complete it. The transition is unconditional: re-completing an already
// completed lesson is accepted silently.
func (s *Store) CompleteLesson(lessonID, instructorID int) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok := s.lessons[lessonID]
	if !ok {
		return models.Lesson{}, ErrLessonNotFound
	}
	if lesson.InstructorID != instructorID {
		return models.Lesson{}, ErrNotLessonOwner
	}

	lesson.Status = models.StatusCompleted
	return *lesson, nil
}

// AddFeedback records instructor feedback and closes out the lesson: the
// lesson is forced to COMPLETED as a side effect, so no separate completion
// call is needed. Multiple feedback entries per lesson are allowed; each is
// retained.
func (s *Store) AddFeedback(lessonID, instructorID, rating int, comments string) (models.Lesson, models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok := s.lessons[lessonID]
	if !ok {
		return models.Lesson{}, models.Feedback{}, ErrLessonNotFound
	}
	if lesson.InstructorID != instructorID {
		return models.Lesson{}, models.Feedback{}, ErrNotLessonOwner
	}

	s.feedbackSeq++
	fb := &models.Feedback{
		ID:           s.feedbackSeq,
		LessonID:     lessonID,
		InstructorID: instructorID,
		Rating:       rating,
		Comments:     comments,
	}
	s.feedback[fb.ID] = fb

	lesson.Status = models.StatusCompleted
	return *lesson, *fb, nil
}

// LessonFeedback returns all feedback recorded for a lesson, ordered by id.
func (s *Store) LessonFeedback(lessonID int) []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Feedback, 0)
	for _, fb := range s.feedback {
		if fb.LessonID == lessonID {
			result = append(result, *fb)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
