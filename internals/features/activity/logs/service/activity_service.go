package service

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/activity/logs/model"
)

// Action tags recorded by the engines.
const (
	ActionGenerateBills = "bills.generate"
	ActionMarkPaid      = "bills.mark_paid"
	ActionBookAmenity   = "bookings.book"
	ActionCancelBooking = "bookings.cancel"
	ActionVisitorEntry  = "visitors.entry"
	ActionVisitorExit   = "visitors.exit"
	ActionUserLogin     = "auth.login"
	ActionUserRegister  = "auth.register"
)

// Record appends one activity-log row. Pass the transaction handle when the
// entry must commit together with the domain write.
func Record(db *gorm.DB, userID uuid.UUID, action, detail string, metadata map[string]any) error {
	entry := model.ActivityLogModel{
		ActivityLogUserID: userID,
		ActivityLogAction: action,
		ActivityLogDetail: detail,
	}
	if len(metadata) > 0 {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		entry.ActivityLogMetadata = datatypes.JSON(raw)
	}
	return db.Create(&entry).Error
}
