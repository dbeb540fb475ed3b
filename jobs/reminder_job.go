package jobs

import (
	"log"
	"time"

	"github.com/nkamau743/driving_school/models"
	"github.com/nkamau743/driving_school/store"
)

// SendLessonReminders logs a reminder for every lesson still BOOKED today.
// Runs from the morning cron in main.
func SendLessonReminders(st *store.Store) {
	log.Println("Running job: SendLessonReminders...")

	today := time.Now().Format("2006-01-02")
	lessons := st.Lessons(store.LessonFilter{
		Date:   today,
		Status: string(models.StatusBooked),
	})

	if len(lessons) == 0 {
		return
	}

	for _, l := range lessons {
		log.Printf("Reminder: lesson %d today at %s — %s with %s, pickup at %s",
			l.ID, l.Time, l.CandidateName, l.InstructorName, l.PickupLocation)
	}
}
