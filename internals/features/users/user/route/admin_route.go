package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "societyhub_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	group := api.Group("/users")
	group.Get("/", ctrl.GetAllUsers)
	group.Put("/:id", ctrl.UpdateUser)
}
