package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/society/flats/controller"
)

func FlatAdminRoutes(api fiber.Router, db *gorm.DB) {
	flatCtrl := controller.NewFlatController(db)

	admin := api.Group("/flats")
	admin.Post("/", flatCtrl.CreateFlat)
	admin.Get("/", flatCtrl.GetAllFlats)
	admin.Put("/:id", flatCtrl.UpdateFlat)
}
