// Package reconciler owns the admin status state machine of a slip.
//
//	pending ──verify──────▶ verified
//	pending ──needs action─▶ needs_action ──verify──▶ verified
//	any     ──replace──────▶ pending (automated status reset too)
//
// verified has no outgoing edge besides replace. The automated status is read as a
// signal and never gates a decision.
package reconciler

import (
	"fmt"
	"strings"
	"time"

	"stayadmin/internal/domains/slip/model"
	"stayadmin/shared/constant"
	"stayadmin/shared/failure"
	gModel "stayadmin/shared/model"
)

// Transition is the post-image of a legal move plus the columns to persist and the
// values to record in the audit trail.
type Transition struct {
	Slip     model.Slip
	Updates  map[string]any
	OldValue string
	NewValue string
	Note     *string
}

type Reconciler struct {
	now func() time.Time
}

func New(now func() time.Time) *Reconciler {
	return &Reconciler{now: now}
}

func requireSlip(slip model.Slip) error {
	if !slip.Exists() {
		return failure.NotFound("slip not found") // nolint:wrapcheck
	}

	return nil
}

func requireActiveBooking(bookingActive bool) error {
	if !bookingActive {
		return failure.InvalidState("slip belongs to a cancelled booking") // nolint:wrapcheck
	}

	return nil
}

func (r *Reconciler) stamp(slip *model.Slip, updates map[string]any, actor gModel.Actor, now time.Time) {
	slip.Touch(actor.ID, now)
	updates[constant.FieldModifiedAt] = now
	updates[constant.FieldModifiedBy] = actor.ID
}

// MarkVerified records the admin approval of a slip.
func (r *Reconciler) MarkVerified(slip model.Slip, bookingActive bool, actor gModel.Actor) (Transition, error) {
	if err := requireSlip(slip); err != nil {
		return Transition{}, err
	}

	if err := requireActiveBooking(bookingActive); err != nil {
		return Transition{}, err
	}

	switch slip.AdminStatus {
	case model.AdminPending, model.AdminNeedsAction:
	case model.AdminVerified:
		return Transition{}, failure.InvalidState("slip is already verified") // nolint:wrapcheck
	default:
		return Transition{}, failure.InvalidState(fmt.Sprintf("slip has unknown admin status %q", slip.AdminStatus)) // nolint:wrapcheck
	}

	now := r.now()
	old := slip.AdminStatus
	adminID := actor.ID

	slip.AdminStatus = model.AdminVerified
	slip.AdminVerifiedAt = &now
	slip.AdminVerifiedBy = &adminID
	slip.AdminNote = nil

	updates := map[string]any{
		model.FieldAdminStatus:     slip.AdminStatus,
		model.FieldAdminVerifiedAt: now,
		model.FieldAdminVerifiedBy: adminID,
		model.FieldAdminNote:       nil,
	}
	r.stamp(&slip, updates, actor, now)

	return Transition{
		Slip:     slip,
		Updates:  updates,
		OldValue: string(old),
		NewValue: string(slip.AdminStatus),
	}, nil
}

// MarkNeedsAction asks the guest to resubmit evidence. The note tells them why.
func (r *Reconciler) MarkNeedsAction(slip model.Slip, bookingActive bool, actor gModel.Actor, note string) (Transition, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return Transition{}, failure.BadRequestFromString("note is required when a slip needs action") // nolint:wrapcheck
	}

	if err := requireSlip(slip); err != nil {
		return Transition{}, err
	}

	if err := requireActiveBooking(bookingActive); err != nil {
		return Transition{}, err
	}

	switch slip.AdminStatus {
	case model.AdminPending:
	case model.AdminNeedsAction:
		return Transition{}, failure.InvalidState("slip is already marked as needing action") // nolint:wrapcheck
	case model.AdminVerified:
		return Transition{}, failure.InvalidState("slip is already verified, replace it to review again") // nolint:wrapcheck
	default:
		return Transition{}, failure.InvalidState(fmt.Sprintf("slip has unknown admin status %q", slip.AdminStatus)) // nolint:wrapcheck
	}

	now := r.now()
	old := slip.AdminStatus
	adminID := actor.ID

	slip.AdminStatus = model.AdminNeedsAction
	slip.AdminVerifiedAt = &now
	slip.AdminVerifiedBy = &adminID
	slip.AdminNote = &note

	updates := map[string]any{
		model.FieldAdminStatus:     slip.AdminStatus,
		model.FieldAdminVerifiedAt: now,
		model.FieldAdminVerifiedBy: adminID,
		model.FieldAdminNote:       note,
	}
	r.stamp(&slip, updates, actor, now)

	return Transition{
		Slip:     slip,
		Updates:  updates,
		OldValue: string(old),
		NewValue: string(slip.AdminStatus),
		Note:     &note,
	}, nil
}

// ReplaceSlip swaps the evidence image. Both statuses return to pending so the new
// image is evaluated from scratch.
func (r *Reconciler) ReplaceSlip(slip model.Slip, bookingActive bool, actor gModel.Actor, imageReference string) (Transition, error) {
	imageReference = strings.TrimSpace(imageReference)
	if imageReference == "" {
		return Transition{}, failure.BadRequestFromString("image reference is required") // nolint:wrapcheck
	}

	if err := requireSlip(slip); err != nil {
		return Transition{}, err
	}

	if err := requireActiveBooking(bookingActive); err != nil {
		return Transition{}, err
	}

	if imageReference == slip.ImageReference {
		return Transition{}, failure.BadRequestFromString("new image reference is identical to the current one") // nolint:wrapcheck
	}

	now := r.now()
	old := slip.ImageReference

	slip.ImageReference = imageReference
	slip.UploadedAt = now
	slip.UploadedBy = actor.ID
	slip.AutomatedStatus = model.AutomatedPending
	slip.AutomatedVerifiedAt = nil
	slip.AdminStatus = model.AdminPending
	slip.AdminVerifiedAt = nil
	slip.AdminVerifiedBy = nil
	slip.AdminNote = nil

	updates := map[string]any{
		model.FieldImageReference:      imageReference,
		model.FieldUploadedAt:          now,
		model.FieldUploadedBy:          actor.ID,
		model.FieldAutomatedStatus:     model.AutomatedPending,
		model.FieldAutomatedVerifiedAt: nil,
		model.FieldAdminStatus:         model.AdminPending,
		model.FieldAdminVerifiedAt:     nil,
		model.FieldAdminVerifiedBy:     nil,
		model.FieldAdminNote:           nil,
	}
	r.stamp(&slip, updates, actor, now)

	return Transition{
		Slip:     slip,
		Updates:  updates,
		OldValue: old,
		NewValue: imageReference,
	}, nil
}

// RecordAutomatedResult applies a result from the verification service. Results for a
// slip that already left pending are stale and rejected.
func (r *Reconciler) RecordAutomatedResult(slip model.Slip, status model.AutomatedStatus, checkedAt time.Time) (Transition, error) {
	if err := requireSlip(slip); err != nil {
		return Transition{}, err
	}

	if err := status.Validate(); err != nil {
		return Transition{}, err
	}

	if status == model.AutomatedPending {
		return Transition{}, failure.BadRequestFromString("automated result must not be pending") // nolint:wrapcheck
	}

	if slip.AutomatedStatus != model.AutomatedPending {
		// nolint:wrapcheck
		return Transition{}, failure.InvalidState(fmt.Sprintf("slip was already checked (%s)", slip.AutomatedStatus))
	}

	if checkedAt.IsZero() {
		checkedAt = r.now()
	}

	old := slip.AutomatedStatus

	slip.AutomatedStatus = status
	slip.AutomatedVerifiedAt = &checkedAt

	updates := map[string]any{
		model.FieldAutomatedStatus:     status,
		model.FieldAutomatedVerifiedAt: checkedAt,
	}

	return Transition{
		Slip:     slip,
		Updates:  updates,
		OldValue: string(old),
		NewValue: string(status),
	}, nil
}

// SetPrimary moves the primary flag onto slip.
func (r *Reconciler) SetPrimary(slip model.Slip, current model.Slip, bookingActive bool) (Transition, error) {
	if err := requireSlip(slip); err != nil {
		return Transition{}, err
	}

	if err := requireActiveBooking(bookingActive); err != nil {
		return Transition{}, err
	}

	if slip.IsPrimary {
		return Transition{}, failure.InvalidState("slip is already the primary slip") // nolint:wrapcheck
	}

	slip.IsPrimary = true

	return Transition{
		Slip:     slip,
		Updates:  map[string]any{model.FieldIsPrimary: true},
		OldValue: current.ID,
		NewValue: slip.ID,
	}, nil
}
