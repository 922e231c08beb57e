package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	complaintController "societyhub_backend/internals/features/community/complaints/controller"
)

func ComplaintUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := complaintController.NewComplaintController(db)

	group := api.Group("/complaints")
	group.Post("/", ctrl.CreateComplaint)
	group.Get("/me", ctrl.GetMyComplaints)
}
