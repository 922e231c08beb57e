package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// AlertModel is an immutable broadcast. An empty AlertTowers slice means the
// alert targets every tower in the society.
type AlertModel struct {
	AlertID        uuid.UUID      `gorm:"column:alert_id;type:uuid;primaryKey" json:"alert_id"`
	AlertTitle     string         `gorm:"column:alert_title;size:120;not null" json:"alert_title"`
	AlertMessage   string         `gorm:"column:alert_message;type:text;not null" json:"alert_message"`
	AlertSeverity  string         `gorm:"column:alert_severity;size:10;not null;default:'Low'" json:"alert_severity"`
	AlertTowers    pq.StringArray `gorm:"column:alert_towers;type:text[]" json:"alert_towers"`
	AlertCreatedBy uuid.UUID      `gorm:"column:alert_created_by;type:uuid;not null" json:"alert_created_by"`
	AlertCreatedAt time.Time      `gorm:"column:alert_created_at;autoCreateTime;index" json:"alert_created_at"`
}

func (AlertModel) TableName() string { return "alerts" }

func (m *AlertModel) BeforeCreate(tx *gorm.DB) error {
	if m.AlertID == uuid.Nil {
		m.AlertID = uuid.New()
	}
	return nil
}

// TargetsTower reports whether the alert applies to the given tower code.
func (m *AlertModel) TargetsTower(towerCode string) bool {
	if len(m.AlertTowers) == 0 {
		return true
	}
	for _, t := range m.AlertTowers {
		if t == towerCode {
			return true
		}
	}
	return false
}
