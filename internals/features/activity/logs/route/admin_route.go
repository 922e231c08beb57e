package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/activity/logs/controller"
)

func ActivityLogAdminRoutes(api fiber.Router, db *gorm.DB) {
	logCtrl := controller.NewActivityLogController(db)

	admin := api.Group("/activity-logs")
	admin.Get("/", logCtrl.GetActivityLogs)
}
