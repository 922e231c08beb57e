package dto

import (
	"time"

	"societyhub_backend/internals/features/society/towers/model"
)

// ============================
// Response DTO
// ============================

type TowerDTO struct {
	TowerID   string    `json:"tower_id"`
	TowerCode string    `json:"tower_code"`
	TowerName string    `json:"tower_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateTowerRequest struct {
	TowerCode string `json:"tower_code" validate:"required,alpha,uppercase,min=1,max=5"`
	TowerName string `json:"tower_name" validate:"required,min=3,max=100"`
}

// ============================
// Converter
// ============================

func ToTowerDTO(m model.TowerModel) TowerDTO {
	return TowerDTO{
		TowerID:   m.TowerID.String(),
		TowerCode: m.TowerCode,
		TowerName: m.TowerName,
		CreatedAt: m.TowerCreatedAt,
	}
}

type UpdateTowerRequest struct {
	TowerName string `json:"tower_name" validate:"required,min=3,max=100"`
}
