package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	"societyhub_backend/internals/features/amenity/bookings/dto"
	"societyhub_backend/internals/features/amenity/bookings/model"
	"societyhub_backend/internals/features/amenity/bookings/service"
	helper "societyhub_backend/internals/helpers"
)

var validateBooking = validator.New()

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// =======================
// Book Amenity Slot (resident)
// POST /api/u/bookings
// =======================
func (ctrl *BookingController) CreateBooking(c *fiber.Ctx) error {
	var body dto.CreateBookingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBooking.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	flatID, ok := helper.GetFlatIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Only accounts linked to a flat can book amenities")
	}

	booking, err := service.Book(ctrl.DB, service.BookInput{
		FlatID:  flatID,
		UserID:  userID,
		Amenity: body.Amenity,
		Date:    date,
		Slot:    body.Slot,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotTaken):
			return helper.JsonError(c, fiber.StatusBadRequest, "Slot already booked")
		case errors.Is(err, service.ErrInvalidAmenity):
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown amenity")
		case errors.Is(err, service.ErrInvalidSlot):
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown time slot")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create booking")
		}
	}

	return helper.JsonCreated(c, "Booking confirmed", dto.ToBookingDTO(*booking))
}

// =======================
// Cancel Booking
// DELETE /api/u/bookings/:id (owner) or /api/a/bookings/:id (admin)
// =======================
func (ctrl *BookingController) CancelBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	isAdmin := helper.GetRoleFromLocals(c) == constants.RoleAdmin
	flatID, _ := helper.GetFlatIDFromLocals(c)

	booking, err := service.Cancel(ctrl.DB, bookingID, flatID, userID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		case errors.Is(err, service.ErrNotOwner):
			return helper.JsonError(c, fiber.StatusForbidden, "You can only cancel your own flat's bookings")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel booking")
		}
	}

	return helper.JsonUpdated(c, "Booking cancelled", dto.ToBookingDTO(*booking))
}

// =======================
// Get Bookings For a Date
// GET /api/u/bookings?date=2026-03-20
// =======================
func (ctrl *BookingController) GetBookingsForDate(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "date is required")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	bookings, err := service.ListForDate(ctrl.DB, date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bookings")
	}

	resp := make([]dto.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDTO(b))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// Get My Bookings (resident)
// =======================
func (ctrl *BookingController) GetMyBookings(c *fiber.Ctx) error {
	flatID, ok := helper.GetFlatIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "No flat linked to this account")
	}

	bookings, err := service.ListForFlat(ctrl.DB, flatID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bookings")
	}

	resp := make([]dto.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDTO(b))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// Amenity/slot catalogue for the booking form
// =======================
func (ctrl *BookingController) GetAmenityOptions(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", fiber.Map{
		"amenities": model.AllowedAmenities,
		"slots":     model.AllowedSlots,
	})
}
