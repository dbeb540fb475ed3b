package models

type Feedback struct {
	ID           int    `json:"id"`
	LessonID     int    `json:"lessonId"`
	InstructorID int    `json:"instructorId"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
}
