package dto

import (
	"time"

	"societyhub_backend/internals/features/community/alerts/model"
)

type AlertDTO struct {
	AlertID   string    `json:"alert_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Towers    []string  `json:"towers"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAlertRequest struct {
	Title    string   `json:"title" validate:"required,min=3,max=120"`
	Message  string   `json:"message" validate:"required,min=5"`
	Severity string   `json:"severity" validate:"required,oneof=Low Medium High"`
	Towers   []string `json:"towers" validate:"omitempty,dive,required"`
}

func ToAlertDTO(m model.AlertModel) AlertDTO {
	towers := []string(m.AlertTowers)
	if towers == nil {
		towers = []string{}
	}
	return AlertDTO{
		AlertID:   m.AlertID.String(),
		Title:     m.AlertTitle,
		Message:   m.AlertMessage,
		Severity:  m.AlertSeverity,
		Towers:    towers,
		CreatedBy: m.AlertCreatedBy.String(),
		CreatedAt: m.AlertCreatedAt,
	}
}
