package dto

import (
	"time"

	"societyhub_backend/internals/features/finance/expenses/model"
)

type ExpenseDTO struct {
	ExpenseID   string    `json:"expense_id"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateExpenseRequest struct {
	Category    string `json:"category" validate:"required,min=2,max=50"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"max=500"`
}

func ToExpenseDTO(m model.ExpenseModel) ExpenseDTO {
	return ExpenseDTO{
		ExpenseID:   m.ExpenseID.String(),
		Category:    m.ExpenseCategory,
		Amount:      m.ExpenseAmount,
		Date:        m.ExpenseDate.Format("2006-01-02"),
		Description: m.ExpenseDescription,
		CreatedAt:   m.ExpenseCreatedAt,
	}
}
