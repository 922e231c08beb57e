package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/security/visitors/dto"
	"societyhub_backend/internals/features/security/visitors/model"
	"societyhub_backend/internals/features/security/visitors/service"
	helper "societyhub_backend/internals/helpers"
)

var validateVisitor = validator.New()

type VisitorController struct {
	DB *gorm.DB
}

func NewVisitorController(db *gorm.DB) *VisitorController {
	return &VisitorController{DB: db}
}

// =======================
// Record Entry (security)
// POST /api/s/visitors/entry
// =======================
func (ctrl *VisitorController) RecordEntry(c *fiber.Ctx) error {
	var body dto.VisitorEntryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVisitor.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	flatID, _ := uuid.Parse(body.FlatID)
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	visitor, err := service.RecordEntry(ctrl.DB, service.EntryInput{
		Name:    body.Name,
		Tower:   body.Tower,
		FlatID:  flatID,
		ActorID: actorID,
	})
	if err != nil {
		if errors.Is(err, service.ErrFlatNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Flat not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record entry")
	}

	return helper.JsonCreated(c, "Visitor entry recorded", dto.ToVisitorDTO(*visitor))
}

// =======================
// Record Exit (security)
// POST /api/s/visitors/exit
// =======================
func (ctrl *VisitorController) RecordExit(c *fiber.Ctx) error {
	var body dto.VisitorExitRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVisitor.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	visitorID, _ := uuid.Parse(body.ID)
	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	visitor, err := service.RecordExit(ctrl.DB, visitorID, actorID)
	if err != nil {
		if errors.Is(err, service.ErrVisitorNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visitor not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record exit")
	}

	return helper.JsonUpdated(c, "Visitor exit recorded", dto.ToVisitorDTO(*visitor))
}

// =======================
// List Active Visitors (security)
// GET /api/s/visitors/active
// =======================
func (ctrl *VisitorController) ListActive(c *fiber.Ctx) error {
	visitors, err := service.ListActive(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve visitors")
	}

	resp := make([]dto.VisitorDTO, 0, len(visitors))
	for _, v := range visitors {
		resp = append(resp, dto.ToVisitorDTO(v))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// Visitor history (security, paginated)
// =======================
func (ctrl *VisitorController) GetVisitorHistory(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.VisitorModel{})
	if flatID := c.Query("flat_id"); flatID != "" {
		q = q.Where("visitor_flat_id = ?", flatID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count visitors")
	}

	var visitors []model.VisitorModel
	if err := q.
		Order("visitor_entry_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&visitors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve visitors")
	}

	resp := make([]dto.VisitorDTO, 0, len(visitors))
	for _, v := range visitors {
		resp = append(resp, dto.ToVisitorDTO(v))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
