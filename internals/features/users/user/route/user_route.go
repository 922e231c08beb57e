package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "societyhub_backend/internals/features/users/user/controller"
)

func UserSelfRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	group := api.Group("/users")
	group.Get("/me", ctrl.GetMe)
}
