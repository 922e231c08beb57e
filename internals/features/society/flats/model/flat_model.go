package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Maintenance status mirrors the flat's latest reconciled bill state.
const (
	MaintenancePaid   = "Paid"
	MaintenanceUnpaid = "Unpaid"
)

type FlatModel struct {
	FlatID                uuid.UUID `gorm:"column:flat_id;type:uuid;primaryKey" json:"flat_id"`
	FlatCode              string    `gorm:"column:flat_code;size:12;not null;uniqueIndex:uq_flats_code" json:"flat_code"`
	FlatTowerID           uuid.UUID `gorm:"column:flat_tower_id;type:uuid;not null;index" json:"flat_tower_id"`
	FlatFloor             int       `gorm:"column:flat_floor;not null" json:"flat_floor"`
	FlatUnitNumber        int       `gorm:"column:flat_unit_number;not null" json:"flat_unit_number"`
	FlatOwnerName         string    `gorm:"column:flat_owner_name;size:100;not null" json:"flat_owner_name"`
	FlatMaintenanceStatus string    `gorm:"column:flat_maintenance_status;size:10;not null;default:'Unpaid'" json:"flat_maintenance_status"`
	FlatCreatedAt         time.Time `gorm:"column:flat_created_at;autoCreateTime" json:"flat_created_at"`
	FlatUpdatedAt         time.Time `gorm:"column:flat_updated_at;autoUpdateTime" json:"flat_updated_at"`
}

func (FlatModel) TableName() string { return "flats" }

func (f *FlatModel) BeforeCreate(tx *gorm.DB) error {
	if f.FlatID == uuid.Nil {
		f.FlatID = uuid.New()
	}
	if f.FlatMaintenanceStatus == "" {
		f.FlatMaintenanceStatus = MaintenanceUnpaid
	}
	return nil
}
