package model

import (
	"fmt"
	"stayadmin/shared/failure"
	"stayadmin/shared/model"
	"time"
)

const (
	TableName  = "booking_slips"
	EntityName = "slip"

	FieldID                  = "id"
	FieldBookingID           = "booking_id"
	FieldImageReference      = "image_reference"
	FieldUploadedAt          = "uploaded_at"
	FieldUploadedBy          = "uploaded_by"
	FieldAutomatedStatus     = "automated_status"
	FieldAutomatedVerifiedAt = "automated_verified_at"
	FieldAdminStatus         = "admin_status"
	FieldAdminVerifiedAt     = "admin_verified_at"
	FieldAdminVerifiedBy     = "admin_verified_by"
	FieldAdminNote           = "admin_note"
	FieldIsPrimary           = "is_primary"
	FieldPosition            = "position"
)

// AutomatedStatus is written only by the external verification service.
type AutomatedStatus string

const (
	AutomatedPending       AutomatedStatus = "pending"
	AutomatedVerified      AutomatedStatus = "verified"
	AutomatedFailed        AutomatedStatus = "failed"
	AutomatedQuotaExceeded AutomatedStatus = "quota_exceeded"
)

func (s AutomatedStatus) Validate() error {
	switch s {
	case AutomatedPending, AutomatedVerified, AutomatedFailed, AutomatedQuotaExceeded:
		return nil
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unknown automated status %q", s)) // nolint:wrapcheck
	}
}

func (s AutomatedStatus) Badge() model.Badge {
	switch s {
	case AutomatedPending:
		return model.Badge{Label: "Checking", Tone: model.ToneNeutral, Icon: "clock"}
	case AutomatedVerified:
		return model.Badge{Label: "Auto-verified", Tone: model.ToneSuccess, Icon: "check-circle"}
	case AutomatedFailed:
		return model.Badge{Label: "Auto-check failed", Tone: model.ToneDanger, Icon: "x-circle"}
	case AutomatedQuotaExceeded:
		return model.Badge{Label: "Quota exceeded", Tone: model.ToneWarning, Icon: "alert-triangle"}
	default:
		return model.Badge{Label: string(s), Tone: model.ToneNeutral, Icon: "help-circle"}
	}
}

// AdminStatus is the human decision on a slip.
type AdminStatus string

const (
	AdminPending     AdminStatus = "pending"
	AdminVerified    AdminStatus = "verified"
	AdminNeedsAction AdminStatus = "needs_action"
)

func (s AdminStatus) Validate() error {
	switch s {
	case AdminPending, AdminVerified, AdminNeedsAction:
		return nil
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unknown admin status %q", s)) // nolint:wrapcheck
	}
}

func (s AdminStatus) Badge() model.Badge {
	switch s {
	case AdminPending:
		return model.Badge{Label: "Awaiting review", Tone: model.ToneNeutral, Icon: "clock"}
	case AdminVerified:
		return model.Badge{Label: "Verified", Tone: model.ToneSuccess, Icon: "shield-check"}
	case AdminNeedsAction:
		return model.Badge{Label: "Needs action", Tone: model.ToneWarning, Icon: "alert-circle"}
	default:
		return model.Badge{Label: string(s), Tone: model.ToneNeutral, Icon: "help-circle"}
	}
}

type Slip struct {
	ID                  string          `db:"id"`
	BookingID           string          `db:"booking_id"`
	ImageReference      string          `db:"image_reference"`
	UploadedAt          time.Time       `db:"uploaded_at"`
	UploadedBy          string          `db:"uploaded_by"`
	AutomatedStatus     AutomatedStatus `db:"automated_status"`
	AutomatedVerifiedAt *time.Time      `db:"automated_verified_at"`
	AdminStatus         AdminStatus     `db:"admin_status"`
	AdminVerifiedAt     *time.Time      `db:"admin_verified_at"`
	AdminVerifiedBy     *string         `db:"admin_verified_by"`
	AdminNote           *string         `db:"admin_note"`
	IsPrimary           bool            `db:"is_primary"`
	Position            int             `db:"position"`
	model.Metadata
}

// Exists reports whether the slip was loaded from storage.
func (s Slip) Exists() bool {
	return s.ID != ""
}

// ComparePrimaryFirst orders the primary slip first, then by upload position.
func ComparePrimaryFirst(a, b Slip) int {
	if a.IsPrimary != b.IsPrimary {
		if a.IsPrimary {
			return -1
		}

		return 1
	}

	return a.Position - b.Position
}
