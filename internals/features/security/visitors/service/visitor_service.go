package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "societyhub_backend/internals/features/activity/logs/service"
	visitorModel "societyhub_backend/internals/features/security/visitors/model"
	flatModel "societyhub_backend/internals/features/society/flats/model"
)

var (
	ErrVisitorNotFound = errors.New("visitor not found")
	ErrFlatNotFound    = errors.New("flat not found")
)

type EntryInput struct {
	Name    string
	Tower   string
	FlatID  uuid.UUID
	ActorID uuid.UUID
}

// RecordEntry logs a visitor in. The flat reference is checked so that every
// visitor row is attributable to a real flat.
func RecordEntry(db *gorm.DB, in EntryInput) (*visitorModel.VisitorModel, error) {
	var flat flatModel.FlatModel
	if err := db.First(&flat, "flat_id = ?", in.FlatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlatNotFound
		}
		return nil, err
	}

	visitor := visitorModel.VisitorModel{
		VisitorName:    in.Name,
		VisitorTower:   in.Tower,
		VisitorFlatID:  flat.FlatID,
		VisitorEntryAt: time.Now(),
		VisitorStatus:  visitorModel.VisitorIn,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&visitor).Error; err != nil {
			return err
		}
		return activityService.Record(tx, in.ActorID, activityService.ActionVisitorEntry,
			fmt.Sprintf("Visitor %s entered for flat %s", in.Name, flat.FlatCode),
			map[string]any{"visitor_id": visitor.VisitorID.String(), "flat_code": flat.FlatCode})
	})
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// RecordExit logs a visitor out. The exit timestamp is set once; a repeated
// call returns the stored row unchanged, so the operation is idempotent.
func RecordExit(db *gorm.DB, visitorID, actorID uuid.UUID) (*visitorModel.VisitorModel, error) {
	var visitor visitorModel.VisitorModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&visitor, "visitor_id = ?", visitorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVisitorNotFound
			}
			return err
		}

		if visitor.VisitorExitAt != nil {
			return nil
		}

		now := time.Now()
		if err := tx.Model(&visitorModel.VisitorModel{}).
			Where("visitor_id = ?", visitor.VisitorID).
			Updates(map[string]any{
				"visitor_exit_at": now,
				"visitor_status":  visitorModel.VisitorOut,
			}).Error; err != nil {
			return err
		}
		visitor.VisitorExitAt = &now
		visitor.VisitorStatus = visitorModel.VisitorOut

		return activityService.Record(tx, actorID, activityService.ActionVisitorExit,
			fmt.Sprintf("Visitor %s exited", visitor.VisitorName),
			map[string]any{"visitor_id": visitor.VisitorID.String()})
	})
	if err != nil {
		return nil, err
	}
	return &visitor, nil
}

// ListActive returns everyone currently inside, most recent entry first.
func ListActive(db *gorm.DB) ([]visitorModel.VisitorModel, error) {
	var visitors []visitorModel.VisitorModel
	err := db.
		Where("visitor_status = ?", visitorModel.VisitorIn).
		Order("visitor_entry_at DESC").
		Find(&visitors).Error
	return visitors, err
}
