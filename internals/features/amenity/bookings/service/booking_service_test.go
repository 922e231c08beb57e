package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	activityModel "societyhub_backend/internals/features/activity/logs/model"
	bookingModel "societyhub_backend/internals/features/amenity/bookings/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&bookingModel.BookingModel{},
		&activityModel.ActivityLogModel{},
	))
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestBook_RejectsTakenSlot(t *testing.T) {
	db := setupTestDB(t)
	date := mustDate(t, "2026-03-20")

	flatA, flatB := uuid.New(), uuid.New()

	first, err := Book(db, BookInput{
		FlatID:  flatA,
		UserID:  uuid.New(),
		Amenity: "Gym",
		Date:    date,
		Slot:    "06:00 AM - 08:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingConfirmed, first.BookingStatus)

	// same triple, different flat
	_, err = Book(db, BookInput{
		FlatID:  flatB,
		UserID:  uuid.New(),
		Amenity: "Gym",
		Date:    date,
		Slot:    "06:00 AM - 08:00 AM",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// adjacent slot is free
	second, err := Book(db, BookInput{
		FlatID:  flatB,
		UserID:  uuid.New(),
		Amenity: "Gym",
		Date:    date,
		Slot:    "08:00 AM - 10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, flatB, second.BookingFlatID)

	var count int64
	require.NoError(t, db.Model(&bookingModel.BookingModel{}).
		Where("booking_amenity = ? AND booking_date = ? AND booking_slot = ?", "Gym", date, "06:00 AM - 08:00 AM").
		Count(&count).Error)
	assert.Equal(t, int64(1), count, "at most one booking per slot triple")
}

func TestBook_SameSlotDifferentAmenityOrDate(t *testing.T) {
	db := setupTestDB(t)
	date := mustDate(t, "2026-03-20")

	_, err := Book(db, BookInput{FlatID: uuid.New(), UserID: uuid.New(), Amenity: "Gym", Date: date, Slot: "06:00 AM - 08:00 AM"})
	require.NoError(t, err)

	_, err = Book(db, BookInput{FlatID: uuid.New(), UserID: uuid.New(), Amenity: "Clubhouse", Date: date, Slot: "06:00 AM - 08:00 AM"})
	assert.NoError(t, err)

	_, err = Book(db, BookInput{FlatID: uuid.New(), UserID: uuid.New(), Amenity: "Gym", Date: mustDate(t, "2026-03-21"), Slot: "06:00 AM - 08:00 AM"})
	assert.NoError(t, err)
}

func TestBook_ValidatesAmenityAndSlot(t *testing.T) {
	db := setupTestDB(t)
	date := mustDate(t, "2026-03-20")

	_, err := Book(db, BookInput{FlatID: uuid.New(), UserID: uuid.New(), Amenity: "Helipad", Date: date, Slot: "06:00 AM - 08:00 AM"})
	assert.ErrorIs(t, err, ErrInvalidAmenity)

	_, err = Book(db, BookInput{FlatID: uuid.New(), UserID: uuid.New(), Amenity: "Gym", Date: date, Slot: "midnight"})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCancel_FreesSlotForRebooking(t *testing.T) {
	db := setupTestDB(t)
	date := mustDate(t, "2026-03-20")
	flat := uuid.New()

	booking, err := Book(db, BookInput{FlatID: flat, UserID: uuid.New(), Amenity: "Gym", Date: date, Slot: "06:00 AM - 08:00 AM"})
	require.NoError(t, err)

	cancelled, err := Cancel(db, booking.BookingID, flat, uuid.New(), false)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingCancelled, cancelled.BookingStatus)

	// the triple is free again
	_, err = Book(db, BookInput{FlatID: uuid.New(), UserID: uuid.New(), Amenity: "Gym", Date: date, Slot: "06:00 AM - 08:00 AM"})
	assert.NoError(t, err)
}

func TestCancel_OwnershipGuard(t *testing.T) {
	db := setupTestDB(t)
	date := mustDate(t, "2026-03-20")
	owner := uuid.New()

	booking, err := Book(db, BookInput{FlatID: owner, UserID: uuid.New(), Amenity: "Gym", Date: date, Slot: "06:00 AM - 08:00 AM"})
	require.NoError(t, err)

	// another flat cannot cancel
	_, err = Cancel(db, booking.BookingID, uuid.New(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrNotOwner)

	// an admin can
	_, err = Cancel(db, booking.BookingID, uuid.Nil, uuid.New(), true)
	assert.NoError(t, err)

	// cancelling again is a no-op
	again, err := Cancel(db, booking.BookingID, uuid.Nil, uuid.New(), true)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.BookingCancelled, again.BookingStatus)
}

func TestCancel_NotFound(t *testing.T) {
	db := setupTestDB(t)
	_, err := Cancel(db, uuid.New(), uuid.New(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
