package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BillPaid   = "Paid"
	BillUnpaid = "Unpaid"
)

type BillModel struct {
	BillID         uuid.UUID `gorm:"column:bill_id;type:uuid;primaryKey" json:"bill_id"`
	BillFlatID     uuid.UUID `gorm:"column:bill_flat_id;type:uuid;not null;index" json:"bill_flat_id"`
	BillCycleID    uuid.UUID `gorm:"column:bill_cycle_id;type:uuid;not null;index" json:"bill_cycle_id"`
	BillCycleLabel string    `gorm:"column:bill_cycle_label;size:50;not null;index" json:"bill_cycle_label"`
	BillAmount     int64     `gorm:"column:bill_amount;not null" json:"bill_amount"`
	BillDueDate    time.Time `gorm:"column:bill_due_date;type:date;not null" json:"bill_due_date"`
	BillStatus     string    `gorm:"column:bill_status;size:10;not null;default:'Unpaid'" json:"bill_status"`
	BillCreatedAt  time.Time `gorm:"column:bill_created_at;autoCreateTime" json:"bill_created_at"`
	BillUpdatedAt  time.Time `gorm:"column:bill_updated_at;autoUpdateTime" json:"bill_updated_at"`
}

func (BillModel) TableName() string { return "bills" }

func (b *BillModel) BeforeCreate(tx *gorm.DB) error {
	if b.BillID == uuid.Nil {
		b.BillID = uuid.New()
	}
	if b.BillStatus == "" {
		b.BillStatus = BillUnpaid
	}
	return nil
}
