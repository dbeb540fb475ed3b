package models

type LessonStatus string

const (
	StatusBooked    LessonStatus = "BOOKED"
	StatusCompleted LessonStatus = "COMPLETED"
	StatusCancelled LessonStatus = "CANCELLED"
)

const (
	DefaultLessonType     = "Standard"
	DefaultPickupLocation = "Roadworthy Driving School, 14 Kenyatta Avenue"
)

type Lesson struct {
	ID             int          `json:"id"`
	CandidateID    int          `json:"candidateId"`
	InstructorID   int          `json:"instructorId"`
	Date           string       `json:"date"`
	Time           string       `json:"time"`
	LessonType     string       `json:"lessonType"`
	PickupLocation string       `json:"pickupLocation"`
	Status         LessonStatus `json:"status"`
	Price          int          `json:"price"`
	InvoiceID      *int         `json:"invoiceId,omitempty"`
}

// EnrichedLesson is the read model returned by lesson listings: the stored
// lesson plus resolved display names. Names are never persisted.
type EnrichedLesson struct {
	Lesson
	CandidateName  string `json:"candidateName"`
	InstructorName string `json:"instructorName"`
}
