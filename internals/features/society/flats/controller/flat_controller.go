package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/society/flats/dto"
	"societyhub_backend/internals/features/society/flats/model"
	"societyhub_backend/internals/features/society/flats/service"
	helper "societyhub_backend/internals/helpers"
)

var validateFlat = validator.New()

type FlatController struct {
	DB *gorm.DB
}

func NewFlatController(db *gorm.DB) *FlatController {
	return &FlatController{DB: db}
}

// =======================
// Create Flat
// =======================
func (ctrl *FlatController) CreateFlat(c *fiber.Ctx) error {
	var body dto.CreateFlatRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFlat.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	flat, err := service.CreateFlat(ctrl.DB, service.CreateFlatInput{
		TowerCode:  body.TowerCode,
		Floor:      body.Floor,
		UnitNumber: body.UnitNumber,
		OwnerName:  body.OwnerName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTowerNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Tower not found")
		case errors.Is(err, service.ErrDuplicateFlat):
			return helper.JsonError(c, fiber.StatusConflict, "Flat already exists")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create flat")
		}
	}

	return helper.JsonCreated(c, "Flat created", dto.ToFlatDTO(*flat))
}

// =======================
// Get All Flats (paginated)
// =======================
func (ctrl *FlatController) GetAllFlats(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.FlatModel{})
	if status := c.Query("maintenance_status"); status != "" {
		q = q.Where("flat_maintenance_status = ?", status)
	}
	if towerID := c.Query("tower_id"); towerID != "" {
		q = q.Where("flat_tower_id = ?", towerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count flats")
	}

	var flats []model.FlatModel
	if err := q.
		Order("flat_code ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&flats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve flats")
	}

	resp := make([]dto.FlatDTO, 0, len(flats))
	for _, f := range flats {
		resp = append(resp, dto.ToFlatDTO(f))
	}

	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// Get My Flat (resident)
// =======================
func (ctrl *FlatController) GetMyFlat(c *fiber.Ctx) error {
	flatID, ok := helper.GetFlatIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "No flat linked to this account")
	}

	var flat model.FlatModel
	if err := ctrl.DB.First(&flat, "flat_id = ?", flatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Flat not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve flat")
	}

	return helper.JsonOK(c, "ok", dto.ToFlatDTO(flat))
}

// =======================
// Update Flat
// =======================
func (ctrl *FlatController) UpdateFlat(c *fiber.Ctx) error {
	flatID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid flat id")
	}

	var body dto.UpdateFlatRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFlat.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var flat model.FlatModel
	if err := ctrl.DB.First(&flat, "flat_id = ?", flatID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Flat not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve flat")
	}

	// Code, tower, floor, and unit are identity; only ownership changes hands.
	if err := ctrl.DB.Model(&flat).Update("flat_owner_name", body.OwnerName).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update flat")
	}
	flat.FlatOwnerName = body.OwnerName

	return helper.JsonUpdated(c, "Flat updated", dto.ToFlatDTO(flat))
}
