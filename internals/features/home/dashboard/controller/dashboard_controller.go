package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/home/dashboard/service"
	helper "societyhub_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// =======================
// Dashboard Stats (admin)
// GET /api/a/dashboard/stats
// =======================
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	stats, err := service.ComputeStats(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	return helper.JsonOK(c, "ok", stats)
}

// =======================
// Budget Suggestion (admin)
// GET /api/a/dashboard/ai-prediction
// =======================
func (ctrl *DashboardController) GetPrediction(c *fiber.Ctx) error {
	prediction, err := service.PredictBudget(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute prediction")
	}
	return helper.JsonOK(c, "ok", prediction)
}
