package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/finance/expenses/dto"
	"societyhub_backend/internals/features/finance/expenses/model"
	helper "societyhub_backend/internals/helpers"
)

var validateExpense = validator.New()

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// =======================
// Create Expense (admin, append-only)
// =======================
func (ctrl *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	var body dto.CreateExpenseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateExpense.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	expense := model.ExpenseModel{
		ExpenseCategory:    body.Category,
		ExpenseAmount:      body.Amount,
		ExpenseDate:        date,
		ExpenseDescription: body.Description,
	}

	if err := ctrl.DB.Create(&expense).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expense")
	}

	return helper.JsonCreated(c, "Expense recorded", dto.ToExpenseDTO(expense))
}

// =======================
// Get Expenses (admin, paginated, newest first)
// =======================
func (ctrl *ExpenseController) GetExpenses(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ExpenseModel{})
	if category := c.Query("category"); category != "" {
		q = q.Where("expense_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count expenses")
	}

	var expenses []model.ExpenseModel
	if err := q.
		Order("expense_date DESC, expense_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&expenses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expenses")
	}

	resp := make([]dto.ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, dto.ToExpenseDTO(e))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
