package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventModel is an immutable notice board entry for society gatherings.
type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;size:120;not null" json:"event_title"`
	EventDescription string    `gorm:"column:event_description;type:text;not null" json:"event_description"`
	EventVenue       string    `gorm:"column:event_venue;size:100;not null" json:"event_venue"`
	EventDate        time.Time `gorm:"column:event_date;not null;index" json:"event_date"`
	EventCreatedBy   uuid.UUID `gorm:"column:event_created_by;type:uuid;not null" json:"event_created_by"`
	EventCreatedAt   time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
