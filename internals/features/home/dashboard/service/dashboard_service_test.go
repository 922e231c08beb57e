package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	bookingModel "societyhub_backend/internals/features/amenity/bookings/model"
	complaintModel "societyhub_backend/internals/features/community/complaints/model"
	billModel "societyhub_backend/internals/features/finance/bills/model"
	expenseModel "societyhub_backend/internals/features/finance/expenses/model"
	visitorModel "societyhub_backend/internals/features/security/visitors/model"
	flatModel "societyhub_backend/internals/features/society/flats/model"
	towerModel "societyhub_backend/internals/features/society/towers/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&towerModel.TowerModel{},
		&flatModel.FlatModel{},
		&billModel.BillingCycleModel{},
		&billModel.BillModel{},
		&complaintModel.ComplaintModel{},
		&bookingModel.BookingModel{},
		&visitorModel.VisitorModel{},
		&expenseModel.ExpenseModel{},
	))
	return db
}

func TestComputeStats_EmptyStore(t *testing.T) {
	db := setupTestDB(t)

	stats, err := ComputeStats(db)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats, "empty store yields all zeroes")
}

func TestComputeStats_CountsAndSums(t *testing.T) {
	db := setupTestDB(t)

	tower := towerModel.TowerModel{TowerCode: "A", TowerName: "Tower A"}
	require.NoError(t, db.Create(&tower).Error)

	paid := flatModel.FlatModel{FlatCode: "A-101", FlatTowerID: tower.TowerID, FlatFloor: 1, FlatUnitNumber: 1, FlatOwnerName: "X", FlatMaintenanceStatus: flatModel.MaintenancePaid}
	unpaid := flatModel.FlatModel{FlatCode: "A-102", FlatTowerID: tower.TowerID, FlatFloor: 1, FlatUnitNumber: 2, FlatOwnerName: "Y"}
	require.NoError(t, db.Create(&paid).Error)
	require.NoError(t, db.Create(&unpaid).Error)

	cycleID := uuid.New()
	due := time.Now()
	require.NoError(t, db.Create(&billModel.BillModel{BillFlatID: paid.FlatID, BillCycleID: cycleID, BillCycleLabel: "2026-03", BillAmount: 1500, BillDueDate: due, BillStatus: billModel.BillPaid}).Error)
	require.NoError(t, db.Create(&billModel.BillModel{BillFlatID: unpaid.FlatID, BillCycleID: cycleID, BillCycleLabel: "2026-03", BillAmount: 1500, BillDueDate: due, BillStatus: billModel.BillUnpaid}).Error)

	require.NoError(t, db.Create(&complaintModel.ComplaintModel{ComplaintFlatID: paid.FlatID, ComplaintUserID: uuid.New(), ComplaintTitle: "Leak", ComplaintDescription: "tap leaking", ComplaintCategory: "Plumbing", ComplaintStatus: complaintModel.ComplaintPending}).Error)
	require.NoError(t, db.Create(&complaintModel.ComplaintModel{ComplaintFlatID: paid.FlatID, ComplaintUserID: uuid.New(), ComplaintTitle: "Done", ComplaintDescription: "fixed", ComplaintCategory: "Other", ComplaintStatus: complaintModel.ComplaintResolved}).Error)

	require.NoError(t, db.Create(&visitorModel.VisitorModel{VisitorName: "In", VisitorTower: "A", VisitorFlatID: paid.FlatID, VisitorEntryAt: time.Now(), VisitorStatus: visitorModel.VisitorIn}).Error)

	stats, err := ComputeStats(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalFlats)
	assert.Equal(t, int64(1), stats.PaidFlats)
	assert.Equal(t, int64(1), stats.PendingComplaints)
	assert.Equal(t, int64(1), stats.ActiveVisitors)
	assert.Equal(t, int64(1500), stats.TotalCollected)
	assert.Equal(t, int64(1500), stats.TotalPending)
}

func seedExpense(t *testing.T, db *gorm.DB, date string, amount int64) {
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	require.NoError(t, db.Create(&expenseModel.ExpenseModel{
		ExpenseCategory: "Maintenance",
		ExpenseAmount:   amount,
		ExpenseDate:     d,
	}).Error)
}

func TestPredictBudget_InsufficientData(t *testing.T) {
	db := setupTestDB(t)

	p, err := PredictBudget(db)
	require.NoError(t, err)
	assert.True(t, p.InsufficientData)
	assert.Equal(t, SuggestInsufficient, p.Suggestion)
	assert.Equal(t, 0.0, p.Growth)

	seedExpense(t, db, "2026-01-31", 100000)
	p, err = PredictBudget(db)
	require.NoError(t, err)
	assert.True(t, p.InsufficientData, "one expense row is still insufficient")
}

func TestPredictBudget_GrowthBands(t *testing.T) {
	db := setupTestDB(t)

	seedExpense(t, db, "2026-01-31", 100000)
	seedExpense(t, db, "2026-02-28", 112000)

	p, err := PredictBudget(db)
	require.NoError(t, err)
	assert.False(t, p.InsufficientData)
	assert.InDelta(t, 12.0, p.Growth, 1e-9)
	assert.Equal(t, SuggestLargerIncrease, p.Suggestion)

	// 8% growth -> smaller increase
	seedExpense(t, db, "2026-03-31", 120960)
	p, err = PredictBudget(db)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, p.Growth, 1e-9)
	assert.Equal(t, SuggestSmallerIncrease, p.Suggestion)

	// flat spend -> no change
	seedExpense(t, db, "2026-04-30", 120960)
	p, err = PredictBudget(db)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p.Growth, 1e-9)
	assert.Equal(t, SuggestNoChange, p.Suggestion)
}
