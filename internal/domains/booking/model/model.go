package model

import (
	"fmt"
	"stayadmin/internal/domains/payment"
	roomTypeModel "stayadmin/internal/domains/roomtype/model"
	"stayadmin/shared/failure"
	"stayadmin/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldReference          = "reference"
	FieldGuestID            = "guest_id"
	FieldGuestName          = "guest_name"
	FieldGuestEmail         = "guest_email"
	FieldRoomTypeID         = "room_type_id"
	FieldRoomTypeName       = "room_type_name"
	FieldCheckIn            = "check_in"
	FieldCheckOut           = "check_out"
	FieldGuestCount         = "guest_count"
	FieldTotalPrice         = "total_price"
	FieldPaymentType        = "payment_type"
	FieldPaymentAmount      = "payment_amount"
	FieldDiscountAmount     = "discount_amount"
	FieldDiscountReason     = "discount_reason"
	FieldStatus             = "status"
	FieldGuestNotes         = "guest_notes"
	FieldAdminNotes         = "admin_notes"
	FieldCancelledAt        = "cancelled_at"
	FieldCancelledBy        = "cancelled_by"
	FieldCancellationReason = "cancellation_reason"
	FieldCreatedAt          = "created_at"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Validate() error {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return nil
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", s)) // nolint:wrapcheck
	}
}

func (s Status) Badge() model.Badge {
	switch s {
	case StatusConfirmed:
		return model.Badge{Label: "Confirmed", Tone: model.ToneSuccess, Icon: "check"}
	case StatusCancelled:
		return model.Badge{Label: "Cancelled", Tone: model.ToneDanger, Icon: "x"}
	case StatusCompleted:
		return model.Badge{Label: "Completed", Tone: model.ToneInfo, Icon: "flag"}
	default:
		return model.Badge{Label: string(s), Tone: model.ToneNeutral, Icon: "help-circle"}
	}
}

type Booking struct {
	ID                 string       `db:"id"`
	Reference          string       `db:"reference"`
	GuestID            string       `db:"guest_id"`
	GuestName          string       `db:"guest_name"`
	GuestEmail         string       `db:"guest_email"`
	RoomTypeID         string       `db:"room_type_id"`
	RoomTypeName       string       `db:"room_type_name" table:"room_types" column:"name"`
	CheckIn            time.Time    `db:"check_in"`
	CheckOut           time.Time    `db:"check_out"`
	GuestCount         int          `db:"guest_count"`
	TotalPrice         int64        `db:"total_price"`
	PaymentType        payment.Type `db:"payment_type"`
	PaymentAmount      int64        `db:"payment_amount"`
	DiscountAmount     *int64       `db:"discount_amount"`
	DiscountReason     *string      `db:"discount_reason"`
	Status             Status       `db:"status"`
	GuestNotes         *string      `db:"guest_notes"`
	AdminNotes         *string      `db:"admin_notes"`
	CancelledAt        *time.Time   `db:"cancelled_at"`
	CancelledBy        *string      `db:"cancelled_by"`
	CancellationReason *string      `db:"cancellation_reason"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.%s = %s.%s",
		roomTypeModel.TableName, roomTypeModel.TableName, roomTypeModel.FieldID, TableName, FieldRoomTypeID)
}

func (b Booking) Exists() bool {
	return b.ID != ""
}

// Active bookings accept slip decisions, completed ones included.
func (b Booking) Active() bool {
	return b.Status != StatusCancelled
}

// Editable bookings accept changes to the stay and its price.
func (b Booking) Editable() bool {
	return b.Status == StatusConfirmed
}

// Discount returns the applied discount, zero when none was ever set.
func (b Booking) Discount() int64 {
	if b.DiscountAmount == nil {
		return 0
	}

	return *b.DiscountAmount
}

// Nights is the length of stay in whole days.
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
