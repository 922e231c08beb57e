package dto

import (
	"time"

	"societyhub_backend/internals/features/finance/bills/model"
)

// ============================
// Response DTOs
// ============================

type BillDTO struct {
	BillID     string    `json:"bill_id"`
	FlatID     string    `json:"flat_id"`
	CycleLabel string    `json:"cycle_label"`
	Amount     int64     `json:"amount"`
	DueDate    string    `json:"due_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type BillingCycleDTO struct {
	CycleID   string    `json:"cycle_id"`
	Label     string    `json:"label"`
	Amount    int64     `json:"amount"`
	DueDate   string    `json:"due_date"`
	BillCount int       `json:"bill_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Request DTOs
// ============================

type GenerateBillsRequest struct {
	CycleLabel string `json:"cycle_label" validate:"required,min=3,max=50"`
	Amount     int64  `json:"amount" validate:"required,gt=0"`
	DueDate    string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type MarkPaidRequest struct {
	FlatID string `json:"flat_id" validate:"required,uuid4"`
	BillID string `json:"bill_id" validate:"required,uuid4"`
}

// ============================
// Converters
// ============================

func ToBillDTO(m model.BillModel) BillDTO {
	return BillDTO{
		BillID:     m.BillID.String(),
		FlatID:     m.BillFlatID.String(),
		CycleLabel: m.BillCycleLabel,
		Amount:     m.BillAmount,
		DueDate:    m.BillDueDate.Format("2006-01-02"),
		Status:     m.BillStatus,
		CreatedAt:  m.BillCreatedAt,
	}
}

func ToBillingCycleDTO(m model.BillingCycleModel) BillingCycleDTO {
	return BillingCycleDTO{
		CycleID:   m.BillingCycleID.String(),
		Label:     m.BillingCycleLabel,
		Amount:    m.BillingCycleAmount,
		DueDate:   m.BillingCycleDueDate.Format("2006-01-02"),
		BillCount: m.BillingCycleBillCount,
		CreatedAt: m.BillingCycleCreatedAt,
	}
}
