package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/security/visitors/controller"
)

func VisitorSecurityRoutes(api fiber.Router, db *gorm.DB) {
	visitorCtrl := controller.NewVisitorController(db)

	sec := api.Group("/visitors")
	sec.Post("/entry", visitorCtrl.RecordEntry)
	sec.Post("/exit", visitorCtrl.RecordExit)
	sec.Get("/active", visitorCtrl.ListActive)
	sec.Get("/history", visitorCtrl.GetVisitorHistory)
}
