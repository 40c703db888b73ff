package dto

import (
	"stayadmin/internal/domains/audit/chain"
	"stayadmin/internal/domains/audit/model"
	"stayadmin/shared/constant"
	gModel "stayadmin/shared/model"
	"stayadmin/shared/timezone"
	"time"
)

type EntryResponse struct {
	ID          string       `json:"id"`
	Seq         int64        `json:"seq"`
	Action      string       `json:"action"`
	ActionBadge gModel.Badge `json:"action_badge"`
	AdminID     string       `json:"admin_id"`
	AdminName   string       `json:"admin_name"`
	OldValue    *string      `json:"old_value"`
	NewValue    *string      `json:"new_value"`
	Note        *string      `json:"note"`
	Hash        string       `json:"hash"`
	CreatedAt   string       `json:"created_at"`
}

func (r *EntryResponse) FromModel(m model.Entry) {
	r.ID = m.ID
	r.Seq = m.Seq
	r.Action = string(m.Action)
	r.ActionBadge = m.Action.Badge()
	r.AdminID = m.AdminID
	r.AdminName = m.AdminName
	r.OldValue = m.OldValue
	r.NewValue = m.NewValue
	r.Note = m.Note
	r.Hash = m.Hash
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func FromModels(models []model.Entry) []EntryResponse {
	res := make([]EntryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type ChainReportResponse struct {
	BookingID string  `json:"booking_id"`
	Valid     bool    `json:"valid"`
	Checked   int     `json:"checked"`
	HeadHash  string  `json:"head_hash,omitempty"`
	BrokenID  *string `json:"broken_entry_id,omitempty"`
	BrokenSeq *int64  `json:"broken_seq,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

func (r *ChainReportResponse) FromReport(bookingID string, report chain.Report) {
	r.BookingID = bookingID
	r.Valid = report.Valid
	r.Checked = report.Checked
	r.HeadHash = report.HeadHash
	r.Reason = report.Reason

	if !report.Valid {
		r.BrokenID = &report.BrokenID
		r.BrokenSeq = &report.BrokenSeq
	}
}

// Event is the payload published on the audit topic after a mutation commits.
type Event struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Action    string    `json:"action"`
	AdminID   string    `json:"admin_id"`
	AdminName string    `json:"admin_name"`
	OldValue  *string   `json:"old_value"`
	NewValue  *string   `json:"new_value"`
	Note      *string   `json:"note"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Event) FromModel(m model.Entry) {
	e.ID = m.ID
	e.BookingID = m.BookingID
	e.Action = string(m.Action)
	e.AdminID = m.AdminID
	e.AdminName = m.AdminName
	e.OldValue = m.OldValue
	e.NewValue = m.NewValue
	e.Note = m.Note
	e.Hash = m.Hash
	e.CreatedAt = m.CreatedAt
}

type Export struct {
	FileName string
	Content  []byte
}
