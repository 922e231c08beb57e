package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	activityModel "societyhub_backend/internals/features/activity/logs/model"
	billModel "societyhub_backend/internals/features/finance/bills/model"
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
		&activityModel.ActivityLogModel{},
	))
	return db
}

func seedFlats(t *testing.T, db *gorm.DB, n int) []flatModel.FlatModel {
	tower := towerModel.TowerModel{TowerCode: "A", TowerName: "Tower A"}
	require.NoError(t, db.Create(&tower).Error)

	flats := make([]flatModel.FlatModel, 0, n)
	for i := 0; i < n; i++ {
		f := flatModel.FlatModel{
			FlatCode:       fmt.Sprintf("A-%d%02d", i/10+1, i%10+1),
			FlatTowerID:    tower.TowerID,
			FlatFloor:      i/10 + 1,
			FlatUnitNumber: i%10 + 1,
			FlatOwnerName:  fmt.Sprintf("Owner %d", i+1),
		}
		require.NoError(t, db.Create(&f).Error)
		flats = append(flats, f)
	}
	return flats
}

func TestGenerateBillsForCycle_CreatesOneBillPerFlat(t *testing.T) {
	db := setupTestDB(t)
	seedFlats(t, db, 112)

	due, _ := time.Parse("2006-01-02", "2026-03-10")
	cycle, err := GenerateBillsForCycle(db, GenerateInput{
		CycleLabel: "2026-03",
		Amount:     1500,
		DueDate:    due,
		ActorID:    uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, 112, cycle.BillingCycleBillCount)

	var bills []billModel.BillModel
	require.NoError(t, db.Where("bill_cycle_label = ?", "2026-03").Find(&bills).Error)
	assert.Len(t, bills, 112)
	for _, b := range bills {
		assert.Equal(t, int64(1500), b.BillAmount)
		assert.Equal(t, billModel.BillUnpaid, b.BillStatus)
		assert.Equal(t, "2026-03-10", b.BillDueDate.Format("2006-01-02"))
	}

	var logCount int64
	require.NoError(t, db.Model(&activityModel.ActivityLogModel{}).Count(&logCount).Error)
	assert.Equal(t, int64(1), logCount)
}

func TestGenerateBillsForCycle_RejectsDuplicateCycle(t *testing.T) {
	db := setupTestDB(t)
	seedFlats(t, db, 5)

	due, _ := time.Parse("2006-01-02", "2026-03-10")
	in := GenerateInput{CycleLabel: "2026-03", Amount: 1500, DueDate: due, ActorID: uuid.New()}

	_, err := GenerateBillsForCycle(db, in)
	require.NoError(t, err)

	_, err = GenerateBillsForCycle(db, in)
	assert.ErrorIs(t, err, ErrDuplicateCycle)

	var count int64
	require.NoError(t, db.Model(&billModel.BillModel{}).Where("bill_cycle_label = ?", "2026-03").Count(&count).Error)
	assert.Equal(t, int64(5), count, "bill count must equal flat count, not double")
}

func TestGenerateBillsForCycle_NoFlats(t *testing.T) {
	db := setupTestDB(t)

	due, _ := time.Parse("2006-01-02", "2026-03-10")
	_, err := GenerateBillsForCycle(db, GenerateInput{CycleLabel: "2026-03", Amount: 1500, DueDate: due, ActorID: uuid.New()})
	assert.ErrorIs(t, err, ErrNoFlats)

	var count int64
	require.NoError(t, db.Model(&billModel.BillingCycleModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "failed generation must leave no cycle row behind")
}

func TestMarkPaid_ReconcilesBillAndFlat(t *testing.T) {
	db := setupTestDB(t)
	flats := seedFlats(t, db, 2)

	due, _ := time.Parse("2006-01-02", "2026-03-10")
	_, err := GenerateBillsForCycle(db, GenerateInput{CycleLabel: "2026-03", Amount: 1500, DueDate: due, ActorID: uuid.New()})
	require.NoError(t, err)

	var bill billModel.BillModel
	require.NoError(t, db.First(&bill, "bill_flat_id = ?", flats[0].FlatID).Error)

	updated, err := MarkPaid(db, flats[0].FlatID, bill.BillID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, billModel.BillPaid, updated.BillStatus)

	var flat flatModel.FlatModel
	require.NoError(t, db.First(&flat, "flat_id = ?", flats[0].FlatID).Error)
	assert.Equal(t, flatModel.MaintenancePaid, flat.FlatMaintenanceStatus)

	// the other flat is untouched
	var other flatModel.FlatModel
	require.NoError(t, db.First(&other, "flat_id = ?", flats[1].FlatID).Error)
	assert.Equal(t, flatModel.MaintenanceUnpaid, other.FlatMaintenanceStatus)
}

func TestMarkPaid_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	flats := seedFlats(t, db, 1)

	due, _ := time.Parse("2006-01-02", "2026-03-10")
	_, err := GenerateBillsForCycle(db, GenerateInput{CycleLabel: "2026-03", Amount: 1500, DueDate: due, ActorID: uuid.New()})
	require.NoError(t, err)

	var bill billModel.BillModel
	require.NoError(t, db.First(&bill).Error)

	_, err = MarkPaid(db, flats[0].FlatID, bill.BillID, uuid.New())
	require.NoError(t, err)
	again, err := MarkPaid(db, flats[0].FlatID, bill.BillID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, billModel.BillPaid, again.BillStatus)

	var flat flatModel.FlatModel
	require.NoError(t, db.First(&flat, "flat_id = ?", flats[0].FlatID).Error)
	assert.Equal(t, flatModel.MaintenancePaid, flat.FlatMaintenanceStatus)
}

func TestMarkPaid_Errors(t *testing.T) {
	db := setupTestDB(t)
	flats := seedFlats(t, db, 2)

	due, _ := time.Parse("2006-01-02", "2026-03-10")
	_, err := GenerateBillsForCycle(db, GenerateInput{CycleLabel: "2026-03", Amount: 1500, DueDate: due, ActorID: uuid.New()})
	require.NoError(t, err)

	var bill billModel.BillModel
	require.NoError(t, db.First(&bill, "bill_flat_id = ?", flats[0].FlatID).Error)

	_, err = MarkPaid(db, flats[0].FlatID, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBillNotFound)

	_, err = MarkPaid(db, uuid.New(), bill.BillID, uuid.New())
	assert.ErrorIs(t, err, ErrFlatNotFound)

	_, err = MarkPaid(db, flats[1].FlatID, bill.BillID, uuid.New())
	assert.ErrorIs(t, err, ErrMismatchedFlat)
}
