package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "societyhub_backend/internals/features/community/events/controller"
)

func EventUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	group := api.Group("/events")
	group.Get("/upcoming", ctrl.GetUpcomingEvents)
}
