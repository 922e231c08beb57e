package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/finance/bills/controller"
)

func BillUserRoutes(api fiber.Router, db *gorm.DB) {
	billCtrl := controller.NewBillController(db)

	user := api.Group("/bills")
	user.Get("/me", billCtrl.GetMyBills)
}
