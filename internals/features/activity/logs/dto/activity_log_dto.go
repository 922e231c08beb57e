package dto

import (
	"time"

	"gorm.io/datatypes"

	"societyhub_backend/internals/features/activity/logs/model"
)

type ActivityLogDTO struct {
	ActivityLogID string         `json:"activity_log_id"`
	UserID        string         `json:"user_id"`
	Action        string         `json:"action"`
	Detail        string         `json:"detail"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

func ToActivityLogDTO(m model.ActivityLogModel) ActivityLogDTO {
	return ActivityLogDTO{
		ActivityLogID: m.ActivityLogID.String(),
		UserID:        m.ActivityLogUserID.String(),
		Action:        m.ActivityLogAction,
		Detail:        m.ActivityLogDetail,
		Metadata:      m.ActivityLogMetadata,
		CreatedAt:     m.ActivityLogCreatedAt,
	}
}
