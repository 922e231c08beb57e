package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/society/towers/controller"
)

func TowerAdminRoutes(api fiber.Router, db *gorm.DB) {
	towerCtrl := controller.NewTowerController(db)

	admin := api.Group("/towers")
	admin.Post("/", towerCtrl.CreateTower)
	admin.Get("/", towerCtrl.GetAllTowers)
	admin.Put("/:id", towerCtrl.UpdateTower)
}
