package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/finance/bills/dto"
	"societyhub_backend/internals/features/finance/bills/model"
	"societyhub_backend/internals/features/finance/bills/service"
	helper "societyhub_backend/internals/helpers"
)

var validateBill = validator.New()

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

// =======================
// Generate Bills For Cycle (admin)
// POST /api/a/bills/generate
// =======================
func (ctrl *BillController) GenerateBills(c *fiber.Ctx) error {
	var body dto.GenerateBillsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBill.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dueDate, err := time.Parse("2006-01-02", body.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
	}

	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	cycle, err := service.GenerateBillsForCycle(ctrl.DB, service.GenerateInput{
		CycleLabel: body.CycleLabel,
		Amount:     body.Amount,
		DueDate:    dueDate,
		ActorID:    actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateCycle):
			return helper.JsonError(c, fiber.StatusBadRequest, "Bills already generated for this cycle")
		case errors.Is(err, service.ErrNoFlats):
			return helper.JsonError(c, fiber.StatusBadRequest, "No flats registered yet")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate bills")
		}
	}

	return helper.JsonCreated(c, "Bills generated", dto.ToBillingCycleDTO(*cycle))
}

// =======================
// Mark Bill Paid (admin)
// POST /api/a/bills/mark-paid
// =======================
func (ctrl *BillController) MarkPaid(c *fiber.Ctx) error {
	var body dto.MarkPaidRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBill.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	flatID, _ := uuid.Parse(body.FlatID)
	billID, _ := uuid.Parse(body.BillID)

	actorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	bill, err := service.MarkPaid(ctrl.DB, flatID, billID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBillNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Bill not found")
		case errors.Is(err, service.ErrFlatNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Flat not found")
		case errors.Is(err, service.ErrMismatchedFlat):
			return helper.JsonError(c, fiber.StatusConflict, "Bill does not belong to the given flat")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark bill paid")
		}
	}

	return helper.JsonUpdated(c, "Bill marked paid", dto.ToBillDTO(*bill))
}

// =======================
// Get Bills (admin, paginated)
// Query: ?cycle_label=...&status=...&flat_id=...
// =======================
func (ctrl *BillController) GetBills(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.BillModel{})
	if label := c.Query("cycle_label"); label != "" {
		q = q.Where("bill_cycle_label = ?", label)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("bill_status = ?", status)
	}
	if flatID := c.Query("flat_id"); flatID != "" {
		q = q.Where("bill_flat_id = ?", flatID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count bills")
	}

	var bills []model.BillModel
	if err := q.
		Order("bill_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&bills).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bills")
	}

	resp := make([]dto.BillDTO, 0, len(bills))
	for _, b := range bills {
		resp = append(resp, dto.ToBillDTO(b))
	}

	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// Get My Bills (resident)
// =======================
func (ctrl *BillController) GetMyBills(c *fiber.Ctx) error {
	flatID, ok := helper.GetFlatIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "No flat linked to this account")
	}

	var bills []model.BillModel
	if err := ctrl.DB.
		Where("bill_flat_id = ?", flatID).
		Order("bill_created_at DESC").
		Find(&bills).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve bills")
	}

	resp := make([]dto.BillDTO, 0, len(bills))
	for _, b := range bills {
		resp = append(resp, dto.ToBillDTO(b))
	}
	return helper.JsonOK(c, "ok", resp)
}
