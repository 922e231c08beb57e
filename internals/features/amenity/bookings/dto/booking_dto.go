package dto

import (
	"time"

	"societyhub_backend/internals/features/amenity/bookings/model"
)

// ============================
// Response DTO
// ============================

type BookingDTO struct {
	BookingID string    `json:"booking_id"`
	FlatID    string    `json:"flat_id"`
	UserID    string    `json:"user_id"`
	Amenity   string    `json:"amenity"`
	Date      string    `json:"date"`
	Slot      string    `json:"slot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// the caller's flat and user come from the session, never the body
// ============================

type CreateBookingRequest struct {
	Amenity string `json:"amenity" validate:"required,min=3,max=30"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Slot    string `json:"slot" validate:"required,min=5,max=30"`
}

// ============================
// Converter
// ============================

func ToBookingDTO(m model.BookingModel) BookingDTO {
	return BookingDTO{
		BookingID: m.BookingID.String(),
		FlatID:    m.BookingFlatID.String(),
		UserID:    m.BookingUserID.String(),
		Amenity:   m.BookingAmenity,
		Date:      m.BookingDate.Format("2006-01-02"),
		Slot:      m.BookingSlot,
		Status:    m.BookingStatus,
		CreatedAt: m.BookingCreatedAt,
	}
}
