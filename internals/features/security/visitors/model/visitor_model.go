package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is derived from the exit timestamp: In iff exit is null.
const (
	VisitorIn  = "In"
	VisitorOut = "Out"
)

type VisitorModel struct {
	VisitorID      uuid.UUID  `gorm:"column:visitor_id;type:uuid;primaryKey" json:"visitor_id"`
	VisitorName    string     `gorm:"column:visitor_name;size:100;not null" json:"visitor_name"`
	VisitorTower   string     `gorm:"column:visitor_tower;size:5;not null" json:"visitor_tower"`
	VisitorFlatID  uuid.UUID  `gorm:"column:visitor_flat_id;type:uuid;not null;index" json:"visitor_flat_id"`
	VisitorEntryAt time.Time  `gorm:"column:visitor_entry_at;not null;index" json:"visitor_entry_at"`
	VisitorExitAt  *time.Time `gorm:"column:visitor_exit_at" json:"visitor_exit_at,omitempty"`
	VisitorStatus  string     `gorm:"column:visitor_status;size:5;not null;default:'In';index" json:"visitor_status"`
}

func (VisitorModel) TableName() string { return "visitors" }

func (v *VisitorModel) BeforeCreate(tx *gorm.DB) error {
	if v.VisitorID == uuid.Nil {
		v.VisitorID = uuid.New()
	}
	if v.VisitorStatus == "" {
		v.VisitorStatus = VisitorIn
	}
	return nil
}
