package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "societyhub_backend/internals/features/activity/logs/service"
	billModel "societyhub_backend/internals/features/finance/bills/model"
	flatModel "societyhub_backend/internals/features/society/flats/model"
)

var (
	ErrDuplicateCycle = errors.New("bills already generated for this cycle")
	ErrNoFlats        = errors.New("no flats to bill")
	ErrBillNotFound   = errors.New("bill not found")
	ErrFlatNotFound   = errors.New("flat not found")
	ErrMismatchedFlat = errors.New("bill does not belong to the given flat")
)

type GenerateInput struct {
	CycleLabel string
	Amount     int64
	DueDate    time.Time
	ActorID    uuid.UUID
}

// GenerateBillsForCycle creates exactly one Unpaid bill per flat for the given
// cycle label, all-or-nothing. The cycle row's unique label index rejects a
// second batch for the same label even under concurrent callers; the count
// pre-check only exists to answer with a clean conflict before doing work.
func GenerateBillsForCycle(db *gorm.DB, in GenerateInput) (*billModel.BillingCycleModel, error) {
	var cycle billModel.BillingCycleModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&billModel.BillingCycleModel{}).
			Where("billing_cycle_label = ?", in.CycleLabel).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateCycle
		}

		var flats []flatModel.FlatModel
		if err := tx.Find(&flats).Error; err != nil {
			return err
		}
		if len(flats) == 0 {
			return ErrNoFlats
		}

		cycle = billModel.BillingCycleModel{
			BillingCycleLabel:     in.CycleLabel,
			BillingCycleAmount:    in.Amount,
			BillingCycleDueDate:   in.DueDate,
			BillingCycleBillCount: len(flats),
		}
		if err := tx.Create(&cycle).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateCycle
			}
			return err
		}

		bills := make([]billModel.BillModel, 0, len(flats))
		for _, f := range flats {
			bills = append(bills, billModel.BillModel{
				BillFlatID:     f.FlatID,
				BillCycleID:    cycle.BillingCycleID,
				BillCycleLabel: in.CycleLabel,
				BillAmount:     in.Amount,
				BillDueDate:    in.DueDate,
				BillStatus:     billModel.BillUnpaid,
			})
		}
		if err := tx.CreateInBatches(&bills, 200).Error; err != nil {
			return err
		}

		return activityService.Record(tx, in.ActorID, activityService.ActionGenerateBills,
			fmt.Sprintf("Generated %d bills for cycle %s", len(bills), in.CycleLabel),
			map[string]any{
				"cycle_label": in.CycleLabel,
				"amount":      in.Amount,
				"bill_count":  len(bills),
			})
	})
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// MarkPaid sets the bill to Paid and reconciles the owning flat's maintenance
// status in the same transaction. Repeating the call leaves the same end state.
func MarkPaid(db *gorm.DB, flatID, billID, actorID uuid.UUID) (*billModel.BillModel, error) {
	var bill billModel.BillModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&bill, "bill_id = ?", billID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBillNotFound
			}
			return err
		}

		var flat flatModel.FlatModel
		if err := tx.First(&flat, "flat_id = ?", flatID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlatNotFound
			}
			return err
		}

		if bill.BillFlatID != flat.FlatID {
			return ErrMismatchedFlat
		}

		if bill.BillStatus == billModel.BillPaid && flat.FlatMaintenanceStatus == flatModel.MaintenancePaid {
			// already reconciled
			return nil
		}

		if err := tx.Model(&billModel.BillModel{}).
			Where("bill_id = ?", bill.BillID).
			Update("bill_status", billModel.BillPaid).Error; err != nil {
			return err
		}
		bill.BillStatus = billModel.BillPaid

		if err := tx.Model(&flatModel.FlatModel{}).
			Where("flat_id = ?", flat.FlatID).
			Update("flat_maintenance_status", flatModel.MaintenancePaid).Error; err != nil {
			return err
		}

		return activityService.Record(tx, actorID, activityService.ActionMarkPaid,
			fmt.Sprintf("Marked bill %s paid for flat %s", bill.BillID, flat.FlatCode),
			map[string]any{
				"bill_id":   bill.BillID.String(),
				"flat_code": flat.FlatCode,
				"amount":    bill.BillAmount,
			})
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
