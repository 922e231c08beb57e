package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/society/flats/controller"
)

func FlatUserRoutes(api fiber.Router, db *gorm.DB) {
	flatCtrl := controller.NewFlatController(db)

	user := api.Group("/flats")
	user.Get("/me", flatCtrl.GetMyFlat)
}
