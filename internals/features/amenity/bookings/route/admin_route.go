package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/amenity/bookings/controller"
)

func BookingAdminRoutes(api fiber.Router, db *gorm.DB) {
	bookingCtrl := controller.NewBookingController(db)

	admin := api.Group("/bookings")
	admin.Get("/", bookingCtrl.GetBookingsForDate)
	admin.Delete("/:id", bookingCtrl.CancelBooking)
}
