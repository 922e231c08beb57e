package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TowerModel struct {
	TowerID        uuid.UUID `gorm:"column:tower_id;type:uuid;primaryKey" json:"tower_id"`
	TowerCode      string    `gorm:"column:tower_code;size:5;not null;uniqueIndex:uq_towers_code" json:"tower_code"`
	TowerName      string    `gorm:"column:tower_name;size:100;not null" json:"tower_name"`
	TowerCreatedAt time.Time `gorm:"column:tower_created_at;autoCreateTime" json:"tower_created_at"`
}

func (TowerModel) TableName() string { return "towers" }

func (t *TowerModel) BeforeCreate(tx *gorm.DB) error {
	if t.TowerID == uuid.Nil {
		t.TowerID = uuid.New()
	}
	return nil
}
