package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Amenities and fixed time slots offered by the society.
var AllowedAmenities = []string{"Gym", "Clubhouse", "Swimming Pool", "Tennis Court", "Banquet Hall"}

var AllowedSlots = []string{
	"06:00 AM - 08:00 AM",
	"08:00 AM - 10:00 AM",
	"10:00 AM - 12:00 PM",
	"04:00 PM - 06:00 PM",
	"06:00 PM - 08:00 PM",
}

// BookingModel holds one reservation of an (amenity, date, slot) triple.
// BookingActive is true for every non-cancelled row and NULL once cancelled,
// so the composite unique index only ever collides on live bookings and a
// cancelled slot becomes bookable again.
type BookingModel struct {
	BookingID        uuid.UUID `gorm:"column:booking_id;type:uuid;primaryKey" json:"booking_id"`
	BookingFlatID    uuid.UUID `gorm:"column:booking_flat_id;type:uuid;not null;index" json:"booking_flat_id"`
	BookingUserID    uuid.UUID `gorm:"column:booking_user_id;type:uuid;not null" json:"booking_user_id"`
	BookingAmenity   string    `gorm:"column:booking_amenity;size:30;not null;uniqueIndex:uq_bookings_slot_triple" json:"booking_amenity"`
	BookingDate      time.Time `gorm:"column:booking_date;type:date;not null;uniqueIndex:uq_bookings_slot_triple" json:"booking_date"`
	BookingSlot      string    `gorm:"column:booking_slot;size:30;not null;uniqueIndex:uq_bookings_slot_triple" json:"booking_slot"`
	BookingStatus    string    `gorm:"column:booking_status;size:12;not null;default:'Confirmed'" json:"booking_status"`
	BookingActive    *bool     `gorm:"column:booking_active;uniqueIndex:uq_bookings_slot_triple" json:"-"`
	BookingCreatedAt time.Time `gorm:"column:booking_created_at;autoCreateTime" json:"booking_created_at"`
	BookingUpdatedAt time.Time `gorm:"column:booking_updated_at;autoUpdateTime" json:"booking_updated_at"`
}

func (BookingModel) TableName() string { return "bookings" }

func (b *BookingModel) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	if b.BookingStatus == "" {
		b.BookingStatus = BookingConfirmed
	}
	if b.BookingActive == nil && b.BookingStatus != BookingCancelled {
		active := true
		b.BookingActive = &active
	}
	return nil
}

func IsAllowedAmenity(a string) bool {
	for _, v := range AllowedAmenities {
		if v == a {
			return true
		}
	}
	return false
}

func IsAllowedSlot(s string) bool {
	for _, v := range AllowedSlots {
		if v == s {
			return true
		}
	}
	return false
}
