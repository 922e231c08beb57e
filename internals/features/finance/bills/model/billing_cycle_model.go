package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingCycleModel is the generation batch for one billing period. The unique
// label index is what makes GenerateBillsForCycle safe under concurrent calls:
// the second insert for the same label fails at commit time.
type BillingCycleModel struct {
	BillingCycleID        uuid.UUID `gorm:"column:billing_cycle_id;type:uuid;primaryKey" json:"billing_cycle_id"`
	BillingCycleLabel     string    `gorm:"column:billing_cycle_label;size:50;not null;uniqueIndex:uq_billing_cycles_label" json:"billing_cycle_label"`
	BillingCycleAmount    int64     `gorm:"column:billing_cycle_amount;not null" json:"billing_cycle_amount"`
	BillingCycleDueDate   time.Time `gorm:"column:billing_cycle_due_date;type:date;not null" json:"billing_cycle_due_date"`
	BillingCycleBillCount int       `gorm:"column:billing_cycle_bill_count;not null" json:"billing_cycle_bill_count"`
	BillingCycleCreatedAt time.Time `gorm:"column:billing_cycle_created_at;autoCreateTime" json:"billing_cycle_created_at"`
}

func (BillingCycleModel) TableName() string { return "billing_cycles" }

func (b *BillingCycleModel) BeforeCreate(tx *gorm.DB) error {
	if b.BillingCycleID == uuid.Nil {
		b.BillingCycleID = uuid.New()
	}
	return nil
}
