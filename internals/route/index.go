package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	authMiddleware "societyhub_backend/internals/middlewares/auth"

	activityRoute "societyhub_backend/internals/features/activity/logs/route"
	bookingRoute "societyhub_backend/internals/features/amenity/bookings/route"
	alertRoute "societyhub_backend/internals/features/community/alerts/route"
	complaintRoute "societyhub_backend/internals/features/community/complaints/route"
	eventRoute "societyhub_backend/internals/features/community/events/route"
	billRoute "societyhub_backend/internals/features/finance/bills/route"
	expenseRoute "societyhub_backend/internals/features/finance/expenses/route"
	dashboardRoute "societyhub_backend/internals/features/home/dashboard/route"
	visitorRoute "societyhub_backend/internals/features/security/visitors/route"
	flatRoute "societyhub_backend/internals/features/society/flats/route"
	towerRoute "societyhub_backend/internals/features/society/towers/route"
	authRoute "societyhub_backend/internals/features/users/auth/route"
	userRoute "societyhub_backend/internals/features/users/user/route"
)

// SetupRoutes mounts three role-gated route trees plus the public auth group:
//
//	/api/auth  session endpoints (login is public, register is admin-gated inside)
//	/api/a     admin console
//	/api/u     resident portal (admins may also browse it)
//	/api/s     security gatehouse
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Admin access only", constants.RoleAdmin),
	)
	towerRoute.TowerAdminRoutes(admin, db)
	flatRoute.FlatAdminRoutes(admin, db)
	billRoute.BillAdminRoutes(admin, db)
	expenseRoute.ExpenseAdminRoutes(admin, db)
	bookingRoute.BookingAdminRoutes(admin, db)
	complaintRoute.ComplaintAdminRoutes(admin, db)
	alertRoute.AlertAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)
	activityRoute.ActivityLogAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)

	resident := api.Group("/u",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Resident access only", constants.RoleResident, constants.RoleAdmin),
	)
	towerRoute.TowerUserRoutes(resident, db)
	flatRoute.FlatUserRoutes(resident, db)
	billRoute.BillUserRoutes(resident, db)
	bookingRoute.BookingUserRoutes(resident, db)
	complaintRoute.ComplaintUserRoutes(resident, db)
	alertRoute.AlertUserRoutes(resident, db)
	eventRoute.EventUserRoutes(resident, db)
	userRoute.UserSelfRoutes(resident, db)

	security := api.Group("/s",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Security access only", constants.RoleSecurity, constants.RoleAdmin),
	)
	visitorRoute.VisitorSecurityRoutes(security, db)
}
