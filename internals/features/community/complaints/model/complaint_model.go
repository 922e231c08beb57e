package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ComplaintPending    = "Pending"
	ComplaintInProgress = "InProgress"
	ComplaintResolved   = "Resolved"
)

var AllowedCategories = []string{"Plumbing", "Electrical", "Security", "Housekeeping", "Lift", "Other"}

// statusRank orders the lifecycle; transitions only move forward.
var statusRank = map[string]int{
	ComplaintPending:    0,
	ComplaintInProgress: 1,
	ComplaintResolved:   2,
}

// CanTransition reports whether moving from -> to respects the forward-only
// lifecycle Pending -> InProgress -> Resolved.
func CanTransition(from, to string) bool {
	fr, okFrom := statusRank[from]
	tr, okTo := statusRank[to]
	return okFrom && okTo && tr >= fr
}

type ComplaintModel struct {
	ComplaintID          uuid.UUID `gorm:"column:complaint_id;type:uuid;primaryKey" json:"complaint_id"`
	ComplaintFlatID      uuid.UUID `gorm:"column:complaint_flat_id;type:uuid;not null;index" json:"complaint_flat_id"`
	ComplaintUserID      uuid.UUID `gorm:"column:complaint_user_id;type:uuid;not null" json:"complaint_user_id"`
	ComplaintTitle       string    `gorm:"column:complaint_title;size:120;not null" json:"complaint_title"`
	ComplaintDescription string    `gorm:"column:complaint_description;type:text;not null" json:"complaint_description"`
	ComplaintCategory    string    `gorm:"column:complaint_category;size:30;not null" json:"complaint_category"`
	ComplaintStatus      string    `gorm:"column:complaint_status;size:15;not null;default:'Pending';index" json:"complaint_status"`
	ComplaintCreatedAt   time.Time `gorm:"column:complaint_created_at;autoCreateTime" json:"complaint_created_at"`
	ComplaintUpdatedAt   time.Time `gorm:"column:complaint_updated_at;autoUpdateTime" json:"complaint_updated_at"`
}

func (ComplaintModel) TableName() string { return "complaints" }

func (m *ComplaintModel) BeforeCreate(tx *gorm.DB) error {
	if m.ComplaintID == uuid.Nil {
		m.ComplaintID = uuid.New()
	}
	if m.ComplaintStatus == "" {
		m.ComplaintStatus = ComplaintPending
	}
	return nil
}

func IsAllowedCategory(c string) bool {
	for _, v := range AllowedCategories {
		if v == c {
			return true
		}
	}
	return false
}
