package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "societyhub_backend/internals/features/activity/logs/service"
	bookingModel "societyhub_backend/internals/features/amenity/bookings/model"
)

var (
	ErrSlotTaken       = errors.New("slot already booked")
	ErrInvalidAmenity  = errors.New("unknown amenity")
	ErrInvalidSlot     = errors.New("unknown time slot")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotOwner        = errors.New("booking belongs to another flat")
)

type BookInput struct {
	FlatID  uuid.UUID
	UserID  uuid.UUID
	Amenity string
	Date    time.Time
	Slot    string
}

// Book reserves the (amenity, date, slot) triple for one flat. The insert runs
// under the composite unique index, so two concurrent calls for the same
// triple cannot both succeed; the pre-check only gives the common conflict a
// cheap answer.
func Book(db *gorm.DB, in BookInput) (*bookingModel.BookingModel, error) {
	if !bookingModel.IsAllowedAmenity(in.Amenity) {
		return nil, ErrInvalidAmenity
	}
	if !bookingModel.IsAllowedSlot(in.Slot) {
		return nil, ErrInvalidSlot
	}

	var existing int64
	if err := db.Model(&bookingModel.BookingModel{}).
		Where("booking_amenity = ? AND booking_date = ? AND booking_slot = ? AND booking_status <> ?",
			in.Amenity, in.Date, in.Slot, bookingModel.BookingCancelled).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrSlotTaken
	}

	booking := bookingModel.BookingModel{
		BookingFlatID:  in.FlatID,
		BookingUserID:  in.UserID,
		BookingAmenity: in.Amenity,
		BookingDate:    in.Date,
		BookingSlot:    in.Slot,
		BookingStatus:  bookingModel.BookingConfirmed,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrSlotTaken
			}
			return err
		}
		return activityService.Record(tx, in.UserID, activityService.ActionBookAmenity,
			fmt.Sprintf("Booked %s on %s (%s)", in.Amenity, in.Date.Format("2006-01-02"), in.Slot),
			map[string]any{
				"booking_id": booking.BookingID.String(),
				"amenity":    in.Amenity,
				"slot":       in.Slot,
			})
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel releases a booking's slot. Only the booking's own flat or an admin
// may cancel. Cancelling twice is a no-op.
func Cancel(db *gorm.DB, bookingID, callerFlatID, actorID uuid.UUID, isAdmin bool) (*bookingModel.BookingModel, error) {
	var booking bookingModel.BookingModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if !isAdmin && booking.BookingFlatID != callerFlatID {
			return ErrNotOwner
		}

		if booking.BookingStatus == bookingModel.BookingCancelled {
			return nil
		}

		// clearing booking_active frees the slot triple in the unique index
		if err := tx.Model(&bookingModel.BookingModel{}).
			Where("booking_id = ?", booking.BookingID).
			Updates(map[string]any{
				"booking_status": bookingModel.BookingCancelled,
				"booking_active": nil,
			}).Error; err != nil {
			return err
		}
		booking.BookingStatus = bookingModel.BookingCancelled
		booking.BookingActive = nil

		return activityService.Record(tx, actorID, activityService.ActionCancelBooking,
			fmt.Sprintf("Cancelled booking %s", booking.BookingID),
			map[string]any{"booking_id": booking.BookingID.String()})
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListForDate returns all non-cancelled bookings on a date, earliest slot first.
func ListForDate(db *gorm.DB, date time.Time) ([]bookingModel.BookingModel, error) {
	var bookings []bookingModel.BookingModel
	err := db.
		Where("booking_date = ? AND booking_status <> ?", date, bookingModel.BookingCancelled).
		Order("booking_amenity ASC, booking_slot ASC").
		Find(&bookings).Error
	return bookings, err
}

// ListForFlat returns a flat's bookings, newest first, cancelled included.
func ListForFlat(db *gorm.DB, flatID uuid.UUID) ([]bookingModel.BookingModel, error) {
	var bookings []bookingModel.BookingModel
	err := db.
		Where("booking_flat_id = ?", flatID).
		Order("booking_created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
