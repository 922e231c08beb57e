package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLogModel is append-only: rows are never updated or deleted.
type ActivityLogModel struct {
	ActivityLogID        uuid.UUID      `gorm:"column:activity_log_id;type:uuid;primaryKey" json:"activity_log_id"`
	ActivityLogUserID    uuid.UUID      `gorm:"column:activity_log_user_id;type:uuid;not null;index" json:"activity_log_user_id"`
	ActivityLogAction    string         `gorm:"column:activity_log_action;size:50;not null;index" json:"activity_log_action"`
	ActivityLogDetail    string         `gorm:"column:activity_log_detail;type:text;not null" json:"activity_log_detail"`
	ActivityLogMetadata  datatypes.JSON `gorm:"column:activity_log_metadata" json:"activity_log_metadata,omitempty"`
	ActivityLogCreatedAt time.Time      `gorm:"column:activity_log_created_at;autoCreateTime;index" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }

func (a *ActivityLogModel) BeforeCreate(tx *gorm.DB) error {
	if a.ActivityLogID == uuid.Nil {
		a.ActivityLogID = uuid.New()
	}
	return nil
}
