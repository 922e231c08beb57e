package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/community/alerts/dto"
	"societyhub_backend/internals/features/community/alerts/model"
	flatModel "societyhub_backend/internals/features/society/flats/model"
	towerModel "societyhub_backend/internals/features/society/towers/model"
	helper "societyhub_backend/internals/helpers"
)

type AlertController struct {
	DB *gorm.DB
}

func NewAlertController(db *gorm.DB) *AlertController {
	return &AlertController{DB: db}
}

var validateAlert = validator.New()

// =======================
// Admin endpoints
// =======================

// CreateAlert broadcasts an announcement. Targets are tower codes; an empty
// list reaches the whole society. Alerts are immutable once created.
func (ctrl *AlertController) CreateAlert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session is missing a user")
	}

	var req dto.CreateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAlert.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Reject tower codes that do not exist so a typo never mutes an alert.
	if len(req.Towers) > 0 {
		var count int64
		if err := ctrl.DB.Model(&towerModel.TowerModel{}).
			Where("tower_code IN ?", req.Towers).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check towers")
		}
		if count != int64(len(req.Towers)) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown tower code in targets")
		}
	}

	alert := model.AlertModel{
		AlertTitle:     req.Title,
		AlertMessage:   req.Message,
		AlertSeverity:  req.Severity,
		AlertTowers:    req.Towers,
		AlertCreatedBy: userID,
	}
	if err := ctrl.DB.Create(&alert).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save alert")
	}

	return helper.JsonCreated(c, "Alert broadcast", dto.ToAlertDTO(alert))
}

// GetAllAlerts lists every alert, newest first.
func (ctrl *AlertController) GetAllAlerts(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AlertModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count alerts")
	}

	var rows []model.AlertModel
	if err := ctrl.DB.
		Order("alert_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch alerts")
	}

	out := make([]dto.AlertDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToAlertDTO(r))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// Resident endpoints
// =======================

// GetMyAlerts lists alerts that target the caller's tower plus society-wide ones.
func (ctrl *AlertController) GetMyAlerts(c *fiber.Ctx) error {
	flatID, ok := helper.GetFlatIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is not linked to a flat")
	}

	var flat flatModel.FlatModel
	if err := ctrl.DB.First(&flat, "flat_id = ?", flatID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve flat")
	}
	var tower towerModel.TowerModel
	if err := ctrl.DB.First(&tower, "tower_id = ?", flat.FlatTowerID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve tower")
	}

	var rows []model.AlertModel
	if err := ctrl.DB.
		Order("alert_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch alerts")
	}

	out := make([]dto.AlertDTO, 0, len(rows))
	for _, r := range rows {
		if r.TargetsTower(tower.TowerCode) {
			out = append(out, dto.ToAlertDTO(r))
		}
	}
	return helper.JsonOK(c, "ok", out)
}
