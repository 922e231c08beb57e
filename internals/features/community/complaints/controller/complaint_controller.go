package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/community/complaints/dto"
	"societyhub_backend/internals/features/community/complaints/model"
	helper "societyhub_backend/internals/helpers"
)

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

var validateComplaint = validator.New()

// =======================
// Resident endpoints
// =======================

// CreateComplaint lets a resident raise a complaint against their own flat.
func (ctrl *ComplaintController) CreateComplaint(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session is missing a user")
	}
	flatID, ok := helper.GetFlatIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is not linked to a flat")
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateComplaint.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !model.IsAllowedCategory(req.Category) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown complaint category")
	}

	complaint := model.ComplaintModel{
		ComplaintFlatID:      flatID,
		ComplaintUserID:      userID,
		ComplaintTitle:       req.Title,
		ComplaintDescription: req.Description,
		ComplaintCategory:    req.Category,
		ComplaintStatus:      model.ComplaintPending,
	}
	if err := ctrl.DB.Create(&complaint).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save complaint")
	}

	return helper.JsonCreated(c, "Complaint submitted", dto.ToComplaintDTO(complaint))
}

// GetMyComplaints lists the caller's flat complaints, newest first.
func (ctrl *ComplaintController) GetMyComplaints(c *fiber.Ctx) error {
	flatID, ok := helper.GetFlatIDFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is not linked to a flat")
	}

	var rows []model.ComplaintModel
	if err := ctrl.DB.
		Where("complaint_flat_id = ?", flatID).
		Order("complaint_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaints")
	}

	out := make([]dto.ComplaintDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToComplaintDTO(r))
	}
	return helper.JsonOK(c, "ok", out)
}

// =======================
// Admin endpoints
// =======================

// GetAllComplaints lists every complaint with optional status / category filters.
func (ctrl *ComplaintController) GetAllComplaints(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ComplaintModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("complaint_status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("complaint_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count complaints")
	}

	var rows []model.ComplaintModel
	if err := q.
		Order("complaint_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaints")
	}

	out := make([]dto.ComplaintDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToComplaintDTO(r))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// UpdateComplaintStatus moves a complaint along its lifecycle. Transitions only
// go forward: Pending -> InProgress -> Resolved.
func (ctrl *ComplaintController) UpdateComplaintStatus(c *fiber.Ctx) error {
	complaintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint id")
	}

	var req dto.UpdateComplaintStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateComplaint.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var complaint model.ComplaintModel
	if err := ctrl.DB.First(&complaint, "complaint_id = ?", complaintID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Complaint not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaint")
	}

	if !model.CanTransition(complaint.ComplaintStatus, req.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Complaint status can only move forward")
	}
	if complaint.ComplaintStatus == req.Status {
		return helper.JsonUpdated(c, "Complaint status unchanged", dto.ToComplaintDTO(complaint))
	}

	if err := ctrl.DB.Model(&complaint).
		Update("complaint_status", req.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update complaint")
	}
	complaint.ComplaintStatus = req.Status

	return helper.JsonUpdated(c, "Complaint status updated", dto.ToComplaintDTO(complaint))
}
