package models

// InstructorProfile is the booking-facing facet of an instructor Account.
// ID equals the matching Account ID. Slots is the instructor's fixed daily
// menu of bookable time labels, in display order.
type InstructorProfile struct {
	ID           int      `json:"id"`
	FullName     string   `json:"fullName"`
	Transmission string   `json:"transmission"`
	Slots        []string `json:"slots"`
}
