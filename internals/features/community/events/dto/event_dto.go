package dto

import (
	"time"

	"societyhub_backend/internals/features/community/events/model"
)

type EventDTO struct {
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"required,min=5"`
	Venue       string `json:"venue" validate:"required,max=100"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

func ToEventDTO(m model.EventModel) EventDTO {
	return EventDTO{
		EventID:     m.EventID.String(),
		Title:       m.EventTitle,
		Description: m.EventDescription,
		Venue:       m.EventVenue,
		Date:        m.EventDate,
		CreatedBy:   m.EventCreatedBy.String(),
		CreatedAt:   m.EventCreatedAt,
	}
}
