package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseModel is append-only; rows feed the budget reporter.
type ExpenseModel struct {
	ExpenseID          uuid.UUID `gorm:"column:expense_id;type:uuid;primaryKey" json:"expense_id"`
	ExpenseCategory    string    `gorm:"column:expense_category;size:50;not null" json:"expense_category"`
	ExpenseAmount      int64     `gorm:"column:expense_amount;not null" json:"expense_amount"`
	ExpenseDate        time.Time `gorm:"column:expense_date;type:date;not null;index" json:"expense_date"`
	ExpenseDescription string    `gorm:"column:expense_description;type:text" json:"expense_description"`
	ExpenseCreatedAt   time.Time `gorm:"column:expense_created_at;autoCreateTime" json:"expense_created_at"`
}

func (ExpenseModel) TableName() string { return "expenses" }

func (e *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if e.ExpenseID == uuid.Nil {
		e.ExpenseID = uuid.New()
	}
	return nil
}
