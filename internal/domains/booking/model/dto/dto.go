package dto

import (
	auditDto "stayadmin/internal/domains/audit/model/dto"
	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/payment"
	slipDto "stayadmin/internal/domains/slip/model/dto"
	"stayadmin/shared"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	gModel "stayadmin/shared/model"
	"stayadmin/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SortFields maps the public sort keys to qualified columns.
var SortFields = map[string]string{
	"created_at":     model.TableName + "." + model.FieldCreatedAt,
	"check_in":       model.TableName + "." + model.FieldCheckIn,
	"room_type_name": "room_types.name",
}

type RegisterBookingRequest struct {
	Reference   string       `json:"reference"    validate:"required,notblank,max=32"`
	GuestID     string       `json:"guest_id"     validate:"required,notblank,max=64"`
	GuestName   string       `json:"guest_name"   validate:"required,notblank,max=100"`
	GuestEmail  string       `json:"guest_email"  validate:"required,email,max=100"`
	RoomTypeID  string       `json:"room_type_id" validate:"required,uuid"`
	CheckIn     string       `json:"check_in"     validate:"required,datetime=2006-01-02"`
	CheckOut    string       `json:"check_out"    validate:"required,datetime=2006-01-02"`
	GuestCount  int          `json:"guest_count"  validate:"required,gte=1"`
	TotalPrice  int64        `json:"total_price"  validate:"gte=0"`
	PaymentType payment.Type `json:"payment_type" validate:"required,domain"`
	GuestNotes  string       `json:"guest_notes"  validate:"max=2000"`
}

func (r *RegisterBookingRequest) ToModel(checkIn, checkOut time.Time, amount int64, actor string, now time.Time) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		Reference:     strings.TrimSpace(r.Reference),
		GuestID:       r.GuestID,
		GuestName:     strings.TrimSpace(r.GuestName),
		GuestEmail:    strings.TrimSpace(r.GuestEmail),
		RoomTypeID:    r.RoomTypeID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestCount:    r.GuestCount,
		TotalPrice:    r.TotalPrice,
		PaymentType:   r.PaymentType,
		PaymentAmount: amount,
		Status:        model.StatusConfirmed,
		GuestNotes:    OptionalText(r.GuestNotes),
		Metadata:      gModel.NewMetadata(actor, now),
	}
}

type UpdateDetailsRequest struct {
	CheckIn     string        `json:"check_in"     validate:"required,datetime=2006-01-02"`
	CheckOut    string        `json:"check_out"    validate:"required,datetime=2006-01-02"`
	GuestCount  int           `json:"guest_count"  validate:"required,gte=1"`
	RoomTypeID  string        `json:"room_type_id" validate:"required,uuid"`
	AdminNotes  string        `json:"admin_notes"  validate:"max=2000"`
	TotalPrice  int64         `json:"total_price"  validate:"gte=0"`
	PaymentType *payment.Type `json:"payment_type" validate:"omitempty,domain"`
}

type ApplyDiscountRequest struct {
	Amount *int64 `json:"amount" validate:"required,gte=0"`
	Reason string `json:"reason" validate:"required,notblank,max=500"`
}

type CancelRequest struct {
	Reason  string `json:"reason"  validate:"required,notblank,max=500"`
	Confirm bool   `json:"confirm"`
}

// OptionalText trims s and maps blank to nil.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := timezone.Format(*t, constant.DateFormat)

	return &s
}

type BookingSummaryResponse struct {
	ID            string       `json:"id"`
	Reference     string       `json:"reference"`
	GuestName     string       `json:"guest_name"`
	GuestEmail    string       `json:"guest_email"`
	RoomTypeName  string       `json:"room_type_name"`
	CheckIn       string       `json:"check_in"`
	CheckOut      string       `json:"check_out"`
	GuestCount    int          `json:"guest_count"`
	TotalPrice    int64        `json:"total_price"`
	PaymentType   string       `json:"payment_type"`
	PaymentAmount int64        `json:"payment_amount"`
	Status        string       `json:"status"`
	StatusBadge   gModel.Badge `json:"status_badge"`
	CreatedAt     string       `json:"created_at"`
}

func (r *BookingSummaryResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Reference = m.Reference
	r.GuestName = m.GuestName
	r.GuestEmail = m.GuestEmail
	r.RoomTypeName = m.RoomTypeName
	r.CheckIn = timezone.FormatDate(m.CheckIn)
	r.CheckOut = timezone.FormatDate(m.CheckOut)
	r.GuestCount = m.GuestCount
	r.TotalPrice = m.TotalPrice
	r.PaymentType = string(m.PaymentType)
	r.PaymentAmount = m.PaymentAmount
	r.Status = string(m.Status)
	r.StatusBadge = m.Status.Badge()
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type SearchResponse struct {
	Bookings  []BookingSummaryResponse `json:"bookings"`
	Page      int                      `json:"page"`
	Limit     int                      `json:"limit"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *SearchResponse) FromModels(models []model.Booking, totalData int, params gDto.QueryParams) {
	r.Page = params.Page
	r.Limit = params.Limit
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, params.Limit)

	r.Bookings = make([]BookingSummaryResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

var awaitingSlipBadge = gModel.Badge{Label: "Awaiting slip", Tone: gModel.ToneWarning, Icon: "image"}

// BookingResponse is the admin projection of a booking.
type BookingResponse struct {
	ID                 string                   `json:"id"`
	Reference          string                   `json:"reference"`
	GuestID            string                   `json:"guest_id"`
	GuestName          string                   `json:"guest_name"`
	GuestEmail         string                   `json:"guest_email"`
	RoomTypeID         string                   `json:"room_type_id"`
	RoomTypeName       string                   `json:"room_type_name"`
	CheckIn            string                   `json:"check_in"`
	CheckOut           string                   `json:"check_out"`
	Nights             int                      `json:"nights"`
	GuestCount         int                      `json:"guest_count"`
	TotalPrice         int64                    `json:"total_price"`
	PaymentType        string                   `json:"payment_type"`
	PaymentTypeLabel   string                   `json:"payment_type_label"`
	PaymentAmount      int64                    `json:"payment_amount"`
	BalanceDue         int64                    `json:"balance_due"`
	DiscountAmount     *int64                   `json:"discount_amount"`
	DiscountReason     *string                  `json:"discount_reason"`
	Status             string                   `json:"status"`
	StatusBadge        gModel.Badge             `json:"status_badge"`
	VerificationBadge  gModel.Badge             `json:"verification_badge"`
	GuestNotes         *string                  `json:"guest_notes"`
	AdminNotes         *string                  `json:"admin_notes"`
	CancelledAt        *string                  `json:"cancelled_at"`
	CancelledBy        *string                  `json:"cancelled_by"`
	CancellationReason *string                  `json:"cancellation_reason"`
	Slips              []slipDto.SlipResponse   `json:"slips"`
	RecentAudit        []auditDto.EntryResponse `json:"recent_audit"`
	gDto.Metadata
}

// FromModel expects slips primary first and audit entries newest first.
func (r *BookingResponse) FromModel(m model.Booking, slips []slipDto.SlipResponse, recent []auditDto.EntryResponse) {
	r.ID = m.ID
	r.Reference = m.Reference
	r.GuestID = m.GuestID
	r.GuestName = m.GuestName
	r.GuestEmail = m.GuestEmail
	r.RoomTypeID = m.RoomTypeID
	r.RoomTypeName = m.RoomTypeName
	r.CheckIn = timezone.FormatDate(m.CheckIn)
	r.CheckOut = timezone.FormatDate(m.CheckOut)
	r.Nights = m.Nights()
	r.GuestCount = m.GuestCount
	r.TotalPrice = m.TotalPrice
	r.PaymentType = string(m.PaymentType)
	r.PaymentTypeLabel = m.PaymentType.Label()
	r.PaymentAmount = m.PaymentAmount
	r.BalanceDue = payment.Outstanding(m.TotalPrice, m.Discount(), m.PaymentAmount)
	r.DiscountAmount = m.DiscountAmount
	r.DiscountReason = m.DiscountReason
	r.Status = string(m.Status)
	r.StatusBadge = m.Status.Badge()
	r.GuestNotes = m.GuestNotes
	r.AdminNotes = m.AdminNotes
	r.CancelledAt = formatOptional(m.CancelledAt)
	r.CancelledBy = m.CancelledBy
	r.CancellationReason = m.CancellationReason
	r.Metadata.FromModel(m.Metadata)

	r.Slips = slips
	if r.Slips == nil {
		r.Slips = []slipDto.SlipResponse{}
	}

	r.RecentAudit = recent
	if r.RecentAudit == nil {
		r.RecentAudit = []auditDto.EntryResponse{}
	}

	r.VerificationBadge = awaitingSlipBadge
	if len(r.Slips) > 0 {
		r.VerificationBadge = r.Slips[0].AdminBadge
	}
}
