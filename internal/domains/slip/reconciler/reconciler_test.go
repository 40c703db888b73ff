package reconciler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayadmin/internal/domains/slip/model"
	"stayadmin/internal/domains/slip/reconciler"
	"stayadmin/shared/failure"
	gModel "stayadmin/shared/model"
)

var (
	fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	admin    = gModel.Actor{ID: "admin-1", Name: "Nok"}
)

func newReconciler() *reconciler.Reconciler {
	return reconciler.New(func() time.Time { return fixedNow })
}

func pendingSlip() model.Slip {
	return model.Slip{
		ID:              "slip-1",
		BookingID:       "booking-1",
		ImageReference:  "slips/a.jpg",
		AutomatedStatus: model.AutomatedPending,
		AdminStatus:     model.AdminPending,
		IsPrimary:       true,
	}
}

func TestReconciler_MarkVerified(t *testing.T) {
	rec := newReconciler()

	failed := pendingSlip()
	failed.AutomatedStatus = model.AutomatedFailed

	needsAction := pendingSlip()
	needsAction.AdminStatus = model.AdminNeedsAction

	verified := pendingSlip()
	verified.AdminStatus = model.AdminVerified

	tests := []struct {
		name     string
		slip     model.Slip
		active   bool
		wantKind failure.Kind
		wantOld  string
	}{
		{name: "pending slip", slip: pendingSlip(), active: true, wantOld: "pending"},
		{name: "automated failure does not block", slip: failed, active: true, wantOld: "pending"},
		{name: "needs action slip", slip: needsAction, active: true, wantOld: "needs_action"},
		{name: "already verified", slip: verified, active: true, wantKind: failure.KindInvalidState},
		{name: "cancelled booking", slip: pendingSlip(), active: false, wantKind: failure.KindInvalidState},
		{name: "missing slip", slip: model.Slip{}, active: true, wantKind: failure.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := rec.MarkVerified(tt.slip, tt.active, admin)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.Empty(t, tr.Updates)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.AdminVerified, tr.Slip.AdminStatus)
			assert.Equal(t, tt.wantOld, tr.OldValue)
			assert.Equal(t, "verified", tr.NewValue)
			require.NotNil(t, tr.Slip.AdminVerifiedAt)
			assert.Equal(t, fixedNow, *tr.Slip.AdminVerifiedAt)
			require.NotNil(t, tr.Slip.AdminVerifiedBy)
			assert.Equal(t, admin.ID, *tr.Slip.AdminVerifiedBy)
			assert.Equal(t, tt.slip.AutomatedStatus, tr.Slip.AutomatedStatus)
			assert.Equal(t, model.AdminVerified, tr.Updates[model.FieldAdminStatus])
		})
	}
}

func TestReconciler_MarkVerifiedTwice(t *testing.T) {
	rec := newReconciler()

	first, err := rec.MarkVerified(pendingSlip(), true, admin)
	require.NoError(t, err)

	second, err := rec.MarkVerified(first.Slip, true, admin)
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	assert.Empty(t, second.Updates)
	assert.Equal(t, model.AdminVerified, first.Slip.AdminStatus)
}

func TestReconciler_MarkNeedsAction(t *testing.T) {
	rec := newReconciler()

	verified := pendingSlip()
	verified.AdminStatus = model.AdminVerified

	t.Run("blank note", func(t *testing.T) {
		slip := pendingSlip()

		_, err := rec.MarkNeedsAction(slip, true, admin, "   ")
		require.Error(t, err)
		assert.Equal(t, failure.KindValidation, failure.GetKind(err))
		assert.Equal(t, model.AdminPending, slip.AdminStatus)
	})

	t.Run("records the note", func(t *testing.T) {
		tr, err := rec.MarkNeedsAction(pendingSlip(), true, admin, " amount is cut off ")
		require.NoError(t, err)
		assert.Equal(t, model.AdminNeedsAction, tr.Slip.AdminStatus)
		require.NotNil(t, tr.Note)
		assert.Equal(t, "amount is cut off", *tr.Note)
		assert.Equal(t, "amount is cut off", tr.Updates[model.FieldAdminNote])
		assert.Equal(t, "pending", tr.OldValue)
		assert.Equal(t, "needs_action", tr.NewValue)
	})

	t.Run("verified slip", func(t *testing.T) {
		_, err := rec.MarkNeedsAction(verified, true, admin, "blurry")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})

	t.Run("cancelled booking", func(t *testing.T) {
		_, err := rec.MarkNeedsAction(pendingSlip(), false, admin, "blurry")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})
}

func TestReconciler_ReplaceSlip(t *testing.T) {
	rec := newReconciler()

	checkedAt := fixedNow.Add(-time.Hour)
	note := "wrong transfer"
	by := "admin-2"

	prior := []model.Slip{pendingSlip(), pendingSlip(), pendingSlip()}
	prior[1].AutomatedStatus = model.AutomatedQuotaExceeded
	prior[1].AutomatedVerifiedAt = &checkedAt
	prior[1].AdminStatus = model.AdminNeedsAction
	prior[1].AdminNote = &note
	prior[1].AdminVerifiedBy = &by
	prior[2].AutomatedStatus = model.AutomatedVerified
	prior[2].AutomatedVerifiedAt = &checkedAt
	prior[2].AdminStatus = model.AdminVerified
	prior[2].AdminVerifiedAt = &checkedAt
	prior[2].AdminVerifiedBy = &by

	for _, slip := range prior {
		t.Run(string(slip.AutomatedStatus)+"/"+string(slip.AdminStatus), func(t *testing.T) {
			tr, err := rec.ReplaceSlip(slip, true, admin, "slips/b.png")
			require.NoError(t, err)

			assert.Equal(t, model.AutomatedPending, tr.Slip.AutomatedStatus)
			assert.Equal(t, model.AdminPending, tr.Slip.AdminStatus)
			assert.Nil(t, tr.Slip.AutomatedVerifiedAt)
			assert.Nil(t, tr.Slip.AdminVerifiedAt)
			assert.Nil(t, tr.Slip.AdminVerifiedBy)
			assert.Nil(t, tr.Slip.AdminNote)
			assert.Equal(t, "slips/b.png", tr.Slip.ImageReference)
			assert.Equal(t, fixedNow, tr.Slip.UploadedAt)
			assert.Equal(t, "slips/a.jpg", tr.OldValue)
			assert.Equal(t, "slips/b.png", tr.NewValue)
			assert.Contains(t, tr.Updates, model.FieldAdminNote)
			assert.Nil(t, tr.Updates[model.FieldAdminNote])
		})
	}

	t.Run("blank reference", func(t *testing.T) {
		_, err := rec.ReplaceSlip(pendingSlip(), true, admin, "")
		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("same reference", func(t *testing.T) {
		_, err := rec.ReplaceSlip(pendingSlip(), true, admin, "slips/a.jpg")
		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("cancelled booking", func(t *testing.T) {
		_, err := rec.ReplaceSlip(pendingSlip(), false, admin, "slips/b.png")
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})
}

func TestReconciler_RecordAutomatedResult(t *testing.T) {
	rec := newReconciler()
	checkedAt := fixedNow.Add(-time.Minute)

	t.Run("stores result", func(t *testing.T) {
		tr, err := rec.RecordAutomatedResult(pendingSlip(), model.AutomatedQuotaExceeded, checkedAt)
		require.NoError(t, err)
		assert.Equal(t, model.AutomatedQuotaExceeded, tr.Slip.AutomatedStatus)
		require.NotNil(t, tr.Slip.AutomatedVerifiedAt)
		assert.Equal(t, checkedAt, *tr.Slip.AutomatedVerifiedAt)
		assert.Equal(t, model.AdminPending, tr.Slip.AdminStatus)
	})

	t.Run("defaults timestamp", func(t *testing.T) {
		tr, err := rec.RecordAutomatedResult(pendingSlip(), model.AutomatedVerified, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, fixedNow, *tr.Slip.AutomatedVerifiedAt)
	})

	t.Run("stale result", func(t *testing.T) {
		slip := pendingSlip()
		slip.AutomatedStatus = model.AutomatedVerified

		_, err := rec.RecordAutomatedResult(slip, model.AutomatedFailed, checkedAt)
		assert.True(t, failure.IsKind(err, failure.KindInvalidState))
	})

	t.Run("pending is not a result", func(t *testing.T) {
		_, err := rec.RecordAutomatedResult(pendingSlip(), model.AutomatedPending, checkedAt)
		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := rec.RecordAutomatedResult(pendingSlip(), model.AutomatedStatus("maybe"), checkedAt)
		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})
}

func TestReconciler_SetPrimary(t *testing.T) {
	rec := newReconciler()

	current := pendingSlip()
	other := pendingSlip()
	other.ID = "slip-2"
	other.IsPrimary = false
	other.Position = 1

	tr, err := rec.SetPrimary(other, current, true)
	require.NoError(t, err)
	assert.True(t, tr.Slip.IsPrimary)
	assert.Equal(t, "slip-1", tr.OldValue)
	assert.Equal(t, "slip-2", tr.NewValue)

	_, err = rec.SetPrimary(current, current, true)
	assert.True(t, failure.IsKind(err, failure.KindInvalidState))

	_, err = rec.SetPrimary(other, current, false)
	assert.True(t, failure.IsKind(err, failure.KindInvalidState))
}
