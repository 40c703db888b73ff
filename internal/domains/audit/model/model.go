package model

import (
	"fmt"
	"stayadmin/shared/failure"
	"stayadmin/shared/model"
	"time"
)

const (
	TableName  = "booking_audit_entries"
	EntityName = "audit"

	FieldID           = "id"
	FieldSeq          = "seq"
	FieldBookingID    = "booking_id"
	FieldAction       = "action"
	FieldAdminID      = "admin_id"
	FieldAdminName    = "admin_name"
	FieldOldValue     = "old_value"
	FieldNewValue     = "new_value"
	FieldNote         = "note"
	FieldPreviousHash = "previous_hash"
	FieldHash         = "hash"
	FieldCreatedAt    = "created_at"
)

type Action string

const (
	ActionBookingCreated     Action = "booking_created"
	ActionSlipUploaded       Action = "slip_uploaded"
	ActionSlipAutoChecked    Action = "slip_auto_checked"
	ActionSlipVerified       Action = "slip_verified"
	ActionSlipNeedsAction    Action = "slip_needs_action"
	ActionSlipReplaced       Action = "slip_replaced"
	ActionSlipPrimaryChanged Action = "slip_primary_changed"
	ActionDiscountApplied    Action = "discount_applied"
	ActionBookingUpdated     Action = "booking_updated"
	ActionBookingCancelled   Action = "booking_cancelled"
	ActionBookingCompleted   Action = "booking_completed"
)

func (a Action) Validate() error {
	switch a {
	case ActionBookingCreated, ActionSlipUploaded, ActionSlipAutoChecked, ActionSlipVerified,
		ActionSlipNeedsAction, ActionSlipReplaced, ActionSlipPrimaryChanged, ActionDiscountApplied,
		ActionBookingUpdated, ActionBookingCancelled, ActionBookingCompleted:
		return nil
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unknown audit action %q", a)) // nolint:wrapcheck
	}
}

func (a Action) Badge() model.Badge {
	switch a {
	case ActionBookingCreated:
		return model.Badge{Label: "Booking created", Tone: model.ToneInfo, Icon: "calendar-plus"}
	case ActionSlipUploaded:
		return model.Badge{Label: "Slip uploaded", Tone: model.ToneInfo, Icon: "upload"}
	case ActionSlipAutoChecked:
		return model.Badge{Label: "Slip auto-checked", Tone: model.ToneNeutral, Icon: "cpu"}
	case ActionSlipVerified:
		return model.Badge{Label: "Slip verified", Tone: model.ToneSuccess, Icon: "shield-check"}
	case ActionSlipNeedsAction:
		return model.Badge{Label: "Slip needs action", Tone: model.ToneWarning, Icon: "alert-circle"}
	case ActionSlipReplaced:
		return model.Badge{Label: "Slip replaced", Tone: model.ToneInfo, Icon: "refresh-cw"}
	case ActionSlipPrimaryChanged:
		return model.Badge{Label: "Primary slip changed", Tone: model.ToneInfo, Icon: "star"}
	case ActionDiscountApplied:
		return model.Badge{Label: "Discount applied", Tone: model.ToneWarning, Icon: "percent"}
	case ActionBookingUpdated:
		return model.Badge{Label: "Booking updated", Tone: model.ToneNeutral, Icon: "edit"}
	case ActionBookingCancelled:
		return model.Badge{Label: "Booking cancelled", Tone: model.ToneDanger, Icon: "x-octagon"}
	case ActionBookingCompleted:
		return model.Badge{Label: "Booking completed", Tone: model.ToneSuccess, Icon: "flag"}
	default:
		return model.Badge{Label: string(a), Tone: model.ToneNeutral, Icon: "help-circle"}
	}
}

// Entry is an immutable audit fact. Seq is assigned by the database and breaks
// created_at ties; it is not part of the hash.
type Entry struct {
	ID           string    `db:"id"`
	Seq          int64     `db:"seq"           insert:"false"`
	BookingID    string    `db:"booking_id"`
	Action       Action    `db:"action"`
	AdminID      string    `db:"admin_id"`
	AdminName    string    `db:"admin_name"`
	OldValue     *string   `db:"old_value"`
	NewValue     *string   `db:"new_value"`
	Note         *string   `db:"note"`
	PreviousHash string    `db:"previous_hash"`
	Hash         string    `db:"hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Record is what a mutation hands to the logger; identity, time and hashes are filled on append.
type Record struct {
	BookingID string
	Action    Action
	Actor     model.Actor
	OldValue  *string
	NewValue  *string
	Note      *string
}

// Text returns a pointer to s, or nil for an empty string.
func Text(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
