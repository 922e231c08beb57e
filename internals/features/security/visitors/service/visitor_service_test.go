package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	activityModel "societyhub_backend/internals/features/activity/logs/model"
	visitorModel "societyhub_backend/internals/features/security/visitors/model"
	flatModel "societyhub_backend/internals/features/society/flats/model"
	towerModel "societyhub_backend/internals/features/society/towers/model"
)

func setupTestDB(t *testing.T) (*gorm.DB, flatModel.FlatModel) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&towerModel.TowerModel{},
		&flatModel.FlatModel{},
		&visitorModel.VisitorModel{},
		&activityModel.ActivityLogModel{},
	))

	tower := towerModel.TowerModel{TowerCode: "A", TowerName: "Tower A"}
	require.NoError(t, db.Create(&tower).Error)
	flat := flatModel.FlatModel{
		FlatCode:       "A-101",
		FlatTowerID:    tower.TowerID,
		FlatFloor:      1,
		FlatUnitNumber: 1,
		FlatOwnerName:  "R. Sharma",
	}
	require.NoError(t, db.Create(&flat).Error)
	return db, flat
}

func TestRecordEntryThenExit(t *testing.T) {
	db, flat := setupTestDB(t)

	visitor, err := RecordEntry(db, EntryInput{Name: "Courier", Tower: "A", FlatID: flat.FlatID, ActorID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, visitorModel.VisitorIn, visitor.VisitorStatus)
	assert.Nil(t, visitor.VisitorExitAt)

	out, err := RecordExit(db, visitor.VisitorID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, visitorModel.VisitorOut, out.VisitorStatus)
	require.NotNil(t, out.VisitorExitAt)
	assert.False(t, out.VisitorExitAt.Before(out.VisitorEntryAt), "exit must not precede entry")
}

func TestRecordEntry_UnknownFlat(t *testing.T) {
	db, _ := setupTestDB(t)

	_, err := RecordEntry(db, EntryInput{Name: "Courier", Tower: "A", FlatID: uuid.New(), ActorID: uuid.New()})
	assert.ErrorIs(t, err, ErrFlatNotFound)
}

func TestRecordExit_SetOnce(t *testing.T) {
	db, flat := setupTestDB(t)

	visitor, err := RecordEntry(db, EntryInput{Name: "Plumber", Tower: "A", FlatID: flat.FlatID, ActorID: uuid.New()})
	require.NoError(t, err)

	first, err := RecordExit(db, visitor.VisitorID, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, first.VisitorExitAt)
	stamp := *first.VisitorExitAt

	time.Sleep(10 * time.Millisecond)

	second, err := RecordExit(db, visitor.VisitorID, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, second.VisitorExitAt)
	assert.True(t, stamp.Equal(*second.VisitorExitAt), "exit timestamp is set once")
}

func TestRecordExit_NotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	_, err := RecordExit(db, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrVisitorNotFound)
}

func TestListActive_OrderAndFilter(t *testing.T) {
	db, flat := setupTestDB(t)

	a, err := RecordEntry(db, EntryInput{Name: "First", Tower: "A", FlatID: flat.FlatID, ActorID: uuid.New()})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	b, err := RecordEntry(db, EntryInput{Name: "Second", Tower: "A", FlatID: flat.FlatID, ActorID: uuid.New()})
	require.NoError(t, err)

	_, err = RecordExit(db, a.VisitorID, uuid.New())
	require.NoError(t, err)

	active, err := ListActive(db)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.VisitorID, active[0].VisitorID)

	// empty once everyone leaves
	_, err = RecordExit(db, b.VisitorID, uuid.New())
	require.NoError(t, err)
	active, err = ListActive(db)
	require.NoError(t, err)
	assert.Len(t, active, 0)
}
