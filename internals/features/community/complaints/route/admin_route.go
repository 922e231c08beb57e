package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	complaintController "societyhub_backend/internals/features/community/complaints/controller"
)

func ComplaintAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := complaintController.NewComplaintController(db)

	group := api.Group("/complaints")
	group.Get("/", ctrl.GetAllComplaints)
	group.Put("/:id/status", ctrl.UpdateComplaintStatus)
}
