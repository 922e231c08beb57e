package dto

import (
	"time"

	"societyhub_backend/internals/features/security/visitors/model"
)

// ============================
// Response DTO
// ============================

type VisitorDTO struct {
	VisitorID string     `json:"visitor_id"`
	Name      string     `json:"name"`
	Tower     string     `json:"tower"`
	FlatID    string     `json:"flat_id"`
	EntryAt   time.Time  `json:"entry_at"`
	ExitAt    *time.Time `json:"exit_at,omitempty"`
	Status    string     `json:"status"`
}

// ============================
// Request DTOs
// ============================

type VisitorEntryRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Tower  string `json:"tower" validate:"required,min=1,max=5"`
	FlatID string `json:"flat_id" validate:"required,uuid4"`
}

type VisitorExitRequest struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ============================
// Converter
// ============================

func ToVisitorDTO(m model.VisitorModel) VisitorDTO {
	return VisitorDTO{
		VisitorID: m.VisitorID.String(),
		Name:      m.VisitorName,
		Tower:     m.VisitorTower,
		FlatID:    m.VisitorFlatID.String(),
		EntryAt:   m.VisitorEntryAt,
		ExitAt:    m.VisitorExitAt,
		Status:    m.VisitorStatus,
	}
}
