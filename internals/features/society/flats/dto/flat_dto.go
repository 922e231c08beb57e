package dto

import (
	"time"

	"societyhub_backend/internals/features/society/flats/model"
)

// ============================
// Response DTO
// ============================

type FlatDTO struct {
	FlatID            string    `json:"flat_id"`
	FlatCode          string    `json:"flat_code"`
	TowerID           string    `json:"tower_id"`
	Floor             int       `json:"floor"`
	UnitNumber        int       `json:"unit_number"`
	OwnerName         string    `json:"owner_name"`
	MaintenanceStatus string    `json:"maintenance_status"`
	CreatedAt         time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateFlatRequest struct {
	TowerCode  string `json:"tower_code" validate:"required,alpha,min=1,max=5"`
	Floor      int    `json:"floor" validate:"required,min=1,max=99"`
	UnitNumber int    `json:"unit_number" validate:"required,min=1,max=99"`
	OwnerName  string `json:"owner_name" validate:"required,min=3,max=100"`
}

// ============================
// Converter
// ============================

func ToFlatDTO(m model.FlatModel) FlatDTO {
	return FlatDTO{
		FlatID:            m.FlatID.String(),
		FlatCode:          m.FlatCode,
		TowerID:           m.FlatTowerID.String(),
		Floor:             m.FlatFloor,
		UnitNumber:        m.FlatUnitNumber,
		OwnerName:         m.FlatOwnerName,
		MaintenanceStatus: m.FlatMaintenanceStatus,
		CreatedAt:         m.FlatCreatedAt,
	}
}

// ============================
// Update Request DTO
// ============================

type UpdateFlatRequest struct {
	OwnerName string `json:"owner_name" validate:"required,min=3,max=100"`
}
