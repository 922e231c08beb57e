package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	authController "societyhub_backend/internals/features/users/auth/controller"
	"societyhub_backend/internals/middlewares"
	authMiddleware "societyhub_backend/internals/middlewares/auth"
)

// AuthRoutes wires the public session endpoints plus the guarded ones.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	group := api.Group("/auth")
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	group.Post("/refresh", ctrl.Refresh)
	group.Post("/logout", ctrl.Logout)

	guarded := group.Group("", authMiddleware.AuthMiddleware())
	guarded.Post("/register",
		middlewares.RegisterRateLimiter(),
		authMiddleware.OnlyRoles("Only admins can register accounts", constants.RoleAdmin),
		ctrl.Register)
	guarded.Post("/change-password", ctrl.ChangePassword)
}
