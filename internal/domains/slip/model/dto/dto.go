package dto

import (
	"mime/multipart"
	"stayadmin/internal/domains/slip/model"
	"stayadmin/shared/constant"
	gModel "stayadmin/shared/model"
	"stayadmin/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type UploadSlipRequest struct {
	Slip     *multipart.FileHeader `json:"slip" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=10"`
	SlipFile multipart.File        `json:"-"`
}

type UploadSlipResponse struct {
	ImageReference string `json:"image_reference"`
	ViewURL        string `json:"view_url"`
}

type AttachSlipRequest struct {
	ImageReference string `json:"image_reference" validate:"required,notblank,max=512"`
	UploadedBy     string `json:"uploaded_by"     validate:"required,notblank,max=100"`
}

func (r *AttachSlipRequest) ToModel(bookingID string, position int, now time.Time) model.Slip {
	return model.Slip{
		ID:              uuid.NewString(),
		BookingID:       bookingID,
		ImageReference:  r.ImageReference,
		UploadedAt:      now,
		UploadedBy:      r.UploadedBy,
		AutomatedStatus: model.AutomatedPending,
		AdminStatus:     model.AdminPending,
		IsPrimary:       position == 0,
		Position:        position,
		Metadata:        gModel.NewMetadata(r.UploadedBy, now),
	}
}

type NeedsActionRequest struct {
	Note string `json:"note" validate:"required,notblank,max=1000"`
}

type ReplaceSlipRequest struct {
	ImageReference string `json:"image_reference" validate:"required,notblank,max=512"`
}

// VerificationResultEvent is published by the automated slip checker.
// ImageReference is optional; when present a result for a superseded image is stale.
type VerificationResultEvent struct {
	SlipID         string    `json:"slip_id"         validate:"required,uuid"`
	ImageReference string    `json:"image_reference"`
	Status         string    `json:"status"          validate:"required,oneof=verified failed quota_exceeded"`
	CheckedAt      time.Time `json:"checked_at"`
	ErrorCode      int       `json:"error_code"`
}

// quotaExceededCode is the checker's error code for an exhausted verification quota.
const quotaExceededCode = 1008

// AutomatedStatus folds the error code into the status the checker reported.
func (e VerificationResultEvent) AutomatedStatus() model.AutomatedStatus {
	if e.ErrorCode == quotaExceededCode {
		return model.AutomatedQuotaExceeded
	}

	return model.AutomatedStatus(e.Status)
}

type SlipResponse struct {
	ID                  string       `json:"id"`
	ImageReference      string       `json:"image_reference"`
	ViewURL             string       `json:"view_url,omitempty"`
	UploadedAt          string       `json:"uploaded_at"`
	UploadedBy          string       `json:"uploaded_by"`
	AutomatedStatus     string       `json:"automated_status"`
	AutomatedBadge      gModel.Badge `json:"automated_badge"`
	AutomatedVerifiedAt *string      `json:"automated_verified_at"`
	AdminStatus         string       `json:"admin_status"`
	AdminBadge          gModel.Badge `json:"admin_badge"`
	AdminVerifiedAt     *string      `json:"admin_verified_at"`
	AdminVerifiedBy     *string      `json:"admin_verified_by"`
	AdminNote           *string      `json:"admin_note"`
	IsPrimary           bool         `json:"is_primary"`
	Position            int          `json:"position"`
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := timezone.Format(*t, constant.DateFormat)

	return &s
}

func (r *SlipResponse) FromModel(m model.Slip, viewURL string) {
	r.ID = m.ID
	r.ImageReference = m.ImageReference
	r.ViewURL = viewURL
	r.UploadedAt = timezone.Format(m.UploadedAt, constant.DateFormat)
	r.UploadedBy = m.UploadedBy
	r.AutomatedStatus = string(m.AutomatedStatus)
	r.AutomatedBadge = m.AutomatedStatus.Badge()
	r.AutomatedVerifiedAt = formatOptional(m.AutomatedVerifiedAt)
	r.AdminStatus = string(m.AdminStatus)
	r.AdminBadge = m.AdminStatus.Badge()
	r.AdminVerifiedAt = formatOptional(m.AdminVerifiedAt)
	r.AdminVerifiedBy = m.AdminVerifiedBy
	r.AdminNote = m.AdminNote
	r.IsPrimary = m.IsPrimary
	r.Position = m.Position
}
