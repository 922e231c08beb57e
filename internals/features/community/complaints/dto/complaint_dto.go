package dto

import (
	"time"

	"societyhub_backend/internals/features/community/complaints/model"
)

type ComplaintDTO struct {
	ComplaintID string    `json:"complaint_id"`
	FlatID      string    `json:"flat_id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"required,min=5"`
	Category    string `json:"category" validate:"required"`
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending InProgress Resolved"`
}

func ToComplaintDTO(m model.ComplaintModel) ComplaintDTO {
	return ComplaintDTO{
		ComplaintID: m.ComplaintID.String(),
		FlatID:      m.ComplaintFlatID.String(),
		UserID:      m.ComplaintUserID.String(),
		Title:       m.ComplaintTitle,
		Description: m.ComplaintDescription,
		Category:    m.ComplaintCategory,
		Status:      m.ComplaintStatus,
		CreatedAt:   m.ComplaintCreatedAt,
		UpdatedAt:   m.ComplaintUpdatedAt,
	}
}
