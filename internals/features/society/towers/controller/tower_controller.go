package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/society/towers/dto"
	"societyhub_backend/internals/features/society/towers/model"
	helper "societyhub_backend/internals/helpers"
)

var validateTower = validator.New()

type TowerController struct {
	DB *gorm.DB
}

func NewTowerController(db *gorm.DB) *TowerController {
	return &TowerController{DB: db}
}

// =======================
// Create Tower
// =======================
func (ctrl *TowerController) CreateTower(c *fiber.Ctx) error {
	var body dto.CreateTowerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.TowerCode = strings.ToUpper(strings.TrimSpace(body.TowerCode))
	if err := validateTower.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tower := model.TowerModel{
		TowerCode: body.TowerCode,
		TowerName: body.TowerName,
	}

	if err := ctrl.DB.Create(&tower).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Tower code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create tower")
	}

	return helper.JsonCreated(c, "Tower created", dto.ToTowerDTO(tower))
}

// =======================
// Get All Towers
// =======================
func (ctrl *TowerController) GetAllTowers(c *fiber.Ctx) error {
	var towers []model.TowerModel
	if err := ctrl.DB.Order("tower_code ASC").Find(&towers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve towers")
	}

	resp := make([]dto.TowerDTO, 0, len(towers))
	for _, t := range towers {
		resp = append(resp, dto.ToTowerDTO(t))
	}
	return helper.JsonOK(c, "ok", resp)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

// =======================
// Update Tower
// =======================
func (ctrl *TowerController) UpdateTower(c *fiber.Ctx) error {
	towerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid tower id")
	}

	var body dto.UpdateTowerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTower.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var tower model.TowerModel
	if err := ctrl.DB.First(&tower, "tower_id = ?", towerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Tower not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve tower")
	}

	// The code is baked into every flat code; only the display name may change.
	if err := ctrl.DB.Model(&tower).Update("tower_name", body.TowerName).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update tower")
	}
	tower.TowerName = body.TowerName

	return helper.JsonUpdated(c, "Tower updated", dto.ToTowerDTO(tower))
}
