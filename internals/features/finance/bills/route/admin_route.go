package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/finance/bills/controller"
)

func BillAdminRoutes(api fiber.Router, db *gorm.DB) {
	billCtrl := controller.NewBillController(db)

	admin := api.Group("/bills")
	admin.Post("/generate", billCtrl.GenerateBills)
	admin.Post("/mark-paid", billCtrl.MarkPaid)
	admin.Get("/", billCtrl.GetBills)
}
