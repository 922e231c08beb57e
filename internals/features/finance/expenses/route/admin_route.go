package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/finance/expenses/controller"
)

func ExpenseAdminRoutes(api fiber.Router, db *gorm.DB) {
	expenseCtrl := controller.NewExpenseController(db)

	admin := api.Group("/expenses")
	admin.Post("/", expenseCtrl.CreateExpense)
	admin.Get("/", expenseCtrl.GetExpenses)
}
