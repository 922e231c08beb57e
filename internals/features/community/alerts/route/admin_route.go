package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertController "societyhub_backend/internals/features/community/alerts/controller"
)

func AlertAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := alertController.NewAlertController(db)

	group := api.Group("/alerts")
	group.Post("/", ctrl.CreateAlert)
	group.Get("/", ctrl.GetAllAlerts)
}
