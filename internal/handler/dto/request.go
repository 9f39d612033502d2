package dto

// RSVPRequest mirrors the wedding site form payload, camelCase included.
// Website is the hidden honeypot field; humans never fill it.
type RSVPRequest struct {
	MainName             string         `json:"mainName"`
	MainAttending        bool           `json:"mainAttending"`
	MainMenu             string         `json:"mainMenu"`
	Guests               []GuestRequest `json:"guests"`
	NeedAccommodation    bool           `json:"needAccommodation"`
	AccommodationDetails string         `json:"accommodationDetails"`
	Email                string         `json:"email"`
	Phone                string         `json:"phone"`
	Message              string         `json:"message"`
	RecaptchaToken       string         `json:"recaptchaToken"`
	Website              string         `json:"website"`
}

type GuestRequest struct {
	Name      string `json:"name"`
	Attending bool   `json:"attending"`
	Menu      string `json:"menu"`
}

type AuthRequest struct {
	Password string `json:"password" binding:"required"`
}

// DataRequest is the single admin endpoint body. Action selects the
// operation; Record and IDs are only read by the actions that need them.
// Token is not a binding field: a missing token must fail authorization,
// not input validation.
type DataRequest struct {
	Token  string         `json:"token"`
	Action string         `json:"action"`
	Record *RecordPayload `json:"record"`
	IDs    []int64        `json:"ids"`
}

// RecordPayload carries one stored row over the wire, column names intact.
type RecordPayload struct {
	ID                   int64  `json:"id"`
	SubmittedAt          string `json:"submitted_at"`
	GroupName            string `json:"group_name"`
	PersonName           string `json:"person_name"`
	Attending            bool   `json:"attending"`
	Menu                 string `json:"menu"`
	Accommodation        bool   `json:"accommodation"`
	AccommodationDetails string `json:"accommodation_details"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Message              string `json:"message"`
}
