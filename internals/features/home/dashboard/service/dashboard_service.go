package service

import (
	"gorm.io/gorm"

	bookingModel "societyhub_backend/internals/features/amenity/bookings/model"
	complaintModel "societyhub_backend/internals/features/community/complaints/model"
	billModel "societyhub_backend/internals/features/finance/bills/model"
	expenseModel "societyhub_backend/internals/features/finance/expenses/model"
	visitorModel "societyhub_backend/internals/features/security/visitors/model"
	flatModel "societyhub_backend/internals/features/society/flats/model"
)

type Stats struct {
	TotalFlats        int64 `json:"total_flats"`
	PaidFlats         int64 `json:"paid_flats"`
	PendingComplaints int64 `json:"pending_complaints"`
	ActiveVisitors    int64 `json:"active_visitors"`
	ActiveBookings    int64 `json:"active_bookings"`
	TotalCollected    int64 `json:"total_collected"`
	TotalPending      int64 `json:"total_pending"`
}

// ComputeStats aggregates the dashboard counters. Pure read; an empty store
// yields zeroes, never an error.
func ComputeStats(db *gorm.DB) (Stats, error) {
	var s Stats

	if err := db.Model(&flatModel.FlatModel{}).Count(&s.TotalFlats).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&flatModel.FlatModel{}).
		Where("flat_maintenance_status = ?", flatModel.MaintenancePaid).
		Count(&s.PaidFlats).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&complaintModel.ComplaintModel{}).
		Where("complaint_status <> ?", complaintModel.ComplaintResolved).
		Count(&s.PendingComplaints).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&visitorModel.VisitorModel{}).
		Where("visitor_status = ?", visitorModel.VisitorIn).
		Count(&s.ActiveVisitors).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&bookingModel.BookingModel{}).
		Where("booking_status <> ?", bookingModel.BookingCancelled).
		Count(&s.ActiveBookings).Error; err != nil {
		return Stats{}, err
	}

	if err := db.Model(&billModel.BillModel{}).
		Where("bill_status = ?", billModel.BillPaid).
		Select("COALESCE(SUM(bill_amount), 0)").
		Scan(&s.TotalCollected).Error; err != nil {
		return Stats{}, err
	}
	if err := db.Model(&billModel.BillModel{}).
		Where("bill_status = ?", billModel.BillUnpaid).
		Select("COALESCE(SUM(bill_amount), 0)").
		Scan(&s.TotalPending).Error; err != nil {
		return Stats{}, err
	}

	return s, nil
}

// Suggestion bands for the expense-growth heuristic.
const (
	SuggestLargerIncrease  = "Consider a larger maintenance fee increase"
	SuggestSmallerIncrease = "Consider a small maintenance fee increase"
	SuggestNoChange        = "No fee change needed"
	SuggestInsufficient    = "Insufficient data"
)

type Prediction struct {
	Suggestion       string  `json:"suggestion"`
	Growth           float64 `json:"growth"`
	Confidence       float64 `json:"confidence"`
	InsufficientData bool    `json:"insufficient_data"`
}

// predictionConfidence is a fixed placeholder. A two-point trend carries no
// statistical confidence, so displaying a varying number would be misleading.
const predictionConfidence = 0.5

// PredictBudget compares the two most recent expense rows and maps the
// percentage growth to a fee suggestion. This is a two-point trend heuristic,
// not a forecast. Fewer than two expenses is a normal response variant, not
// an error.
func PredictBudget(db *gorm.DB) (Prediction, error) {
	var recent []expenseModel.ExpenseModel
	if err := db.
		Order("expense_date DESC, expense_created_at DESC").
		Limit(2).
		Find(&recent).Error; err != nil {
		return Prediction{}, err
	}

	if len(recent) < 2 || recent[1].ExpenseAmount == 0 {
		return Prediction{
			Suggestion:       SuggestInsufficient,
			Growth:           0,
			InsufficientData: true,
		}, nil
	}

	latest := float64(recent[0].ExpenseAmount)
	previous := float64(recent[1].ExpenseAmount)
	growth := (latest - previous) / previous * 100

	suggestion := SuggestNoChange
	switch {
	case growth > 10:
		suggestion = SuggestLargerIncrease
	case growth > 5:
		suggestion = SuggestSmallerIncrease
	}

	return Prediction{
		Suggestion: suggestion,
		Growth:     growth,
		Confidence: predictionConfidence,
	}, nil
}
