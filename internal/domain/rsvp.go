package domain

import "time"

// Menu choices offered by the form. Stored as free text so the dashboard can
// correct typos without a schema change.
const (
	MenuClassic    = "classic"
	MenuVegetarian = "vegetarian"
)

// Record is one row of the RSVP table: one person, main respondent or guest.
// All records from a single submission share SubmittedAt and GroupName.
type Record struct {
	ID                   int64     `json:"id"`
	SubmittedAt          time.Time `json:"submitted_at"`
	GroupName            string    `json:"group_name"`
	PersonName           string    `json:"person_name"`
	Attending            bool      `json:"attending"`
	Menu                 string    `json:"menu"`
	Accommodation        bool      `json:"accommodation"`
	AccommodationDetails string    `json:"accommodation_details"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Message              string    `json:"message"`
}

type Guest struct {
	Name      string
	Attending bool
	Menu      string
}

// Submission is the raw RSVP form input before validation.
// Honeypot carries the hidden "website" field: humans leave it empty.
type Submission struct {
	MainName             string
	MainAttending        bool
	MainMenu             string
	Guests               []Guest
	NeedAccommodation    bool
	AccommodationDetails string
	Email                string
	Phone                string
	Message              string
	RecaptchaToken       string
	Honeypot             string
}
