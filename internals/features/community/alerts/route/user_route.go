package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertController "societyhub_backend/internals/features/community/alerts/controller"
)

func AlertUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := alertController.NewAlertController(db)

	group := api.Group("/alerts")
	group.Get("/me", ctrl.GetMyAlerts)
}
