package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/society/towers/controller"
)

func TowerUserRoutes(api fiber.Router, db *gorm.DB) {
	towerCtrl := controller.NewTowerController(db)

	user := api.Group("/towers")
	user.Get("/", towerCtrl.GetAllTowers)
}
