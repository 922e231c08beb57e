package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/amenity/bookings/controller"
)

func BookingUserRoutes(api fiber.Router, db *gorm.DB) {
	bookingCtrl := controller.NewBookingController(db)

	user := api.Group("/bookings")
	user.Post("/", bookingCtrl.CreateBooking)
	user.Get("/", bookingCtrl.GetBookingsForDate)
	user.Get("/me", bookingCtrl.GetMyBookings)
	user.Get("/options", bookingCtrl.GetAmenityOptions)
	user.Delete("/:id", bookingCtrl.CancelBooking)
}
