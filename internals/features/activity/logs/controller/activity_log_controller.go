package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/activity/logs/dto"
	"societyhub_backend/internals/features/activity/logs/model"
	helper "societyhub_backend/internals/helpers"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// =======================
// Get Activity Logs (paginated, newest first)
// Query: ?action=bills.generate&user_id=...
// =======================
func (ctrl *ActivityLogController) GetActivityLogs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ActivityLogModel{})
	if action := c.Query("action"); action != "" {
		q = q.Where("activity_log_action = ?", action)
	}
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("activity_log_user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count activity logs")
	}

	var logs []model.ActivityLogModel
	if err := q.
		Order("activity_log_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve activity logs")
	}

	resp := make([]dto.ActivityLogDTO, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.ToActivityLogDTO(l))
	}

	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
