package dto

import (
	"time"

	"github.com/istvanv2/giwedding/internal/domain"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type DataResponse struct {
	Success bool            `json:"success"`
	Records []RecordPayload `json:"records,omitempty"`
	Record  *RecordPayload  `json:"record,omitempty"`
	Deleted int64           `json:"deleted,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRecordPayload(r *domain.Record) RecordPayload {
	return RecordPayload{
		ID:                   r.ID,
		SubmittedAt:          r.SubmittedAt.Format(time.RFC3339),
		GroupName:            r.GroupName,
		PersonName:           r.PersonName,
		Attending:            r.Attending,
		Menu:                 r.Menu,
		Accommodation:        r.Accommodation,
		AccommodationDetails: r.AccommodationDetails,
		Email:                r.Email,
		Phone:                r.Phone,
		Message:              r.Message,
	}
}

// ToRecord keeps SubmittedAt untouched when the payload carries no parseable
// timestamp; the stored value wins for update requests that omit it.
func (p *RecordPayload) ToRecord() *domain.Record {
	rec := &domain.Record{
		ID:                   p.ID,
		GroupName:            p.GroupName,
		PersonName:           p.PersonName,
		Attending:            p.Attending,
		Menu:                 p.Menu,
		Accommodation:        p.Accommodation,
		AccommodationDetails: p.AccommodationDetails,
		Email:                p.Email,
		Phone:                p.Phone,
		Message:              p.Message,
	}
	if at, err := time.Parse(time.RFC3339, p.SubmittedAt); err == nil {
		rec.SubmittedAt = at
	}
	return rec
}

func (r *RSVPRequest) ToSubmission() domain.Submission {
	guests := make([]domain.Guest, 0, len(r.Guests))
	for _, g := range r.Guests {
		guests = append(guests, domain.Guest{
			Name:      g.Name,
			Attending: g.Attending,
			Menu:      g.Menu,
		})
	}

	return domain.Submission{
		MainName:             r.MainName,
		MainAttending:        r.MainAttending,
		MainMenu:             r.MainMenu,
		Guests:               guests,
		NeedAccommodation:    r.NeedAccommodation,
		AccommodationDetails: r.AccommodationDetails,
		Email:                r.Email,
		Phone:                r.Phone,
		Message:              r.Message,
		RecaptchaToken:       r.RecaptchaToken,
		Honeypot:             r.Website,
	}
}
