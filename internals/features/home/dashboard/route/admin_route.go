package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/home/dashboard/controller"
)

func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	dashCtrl := controller.NewDashboardController(db)

	admin := api.Group("/dashboard")
	admin.Get("/stats", dashCtrl.GetStats)
	admin.Get("/ai-prediction", dashCtrl.GetPrediction)
}
