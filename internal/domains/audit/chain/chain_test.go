package chain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayadmin/internal/domains/audit/chain"
	"stayadmin/internal/domains/audit/model"
)

func buildHistory(t *testing.T, n int) []model.Entry {
	t.Helper()

	base := time.Date(2026, 5, 1, 8, 0, 0, 123456789, time.FixedZone("ICT", 7*60*60))
	entries := make([]model.Entry, 0, n)
	previous := chain.Genesis

	for i := range n {
		entry := chain.Seal(previous, model.Entry{
			ID:        "entry-" + string(rune('a'+i)),
			Seq:       int64(i + 1),
			BookingID: "booking-1",
			Action:    model.ActionSlipVerified,
			AdminID:   "admin-1",
			AdminName: "Nok",
			OldValue:  model.Text("pending"),
			NewValue:  model.Text("verified"),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})

		previous = entry.Hash
		entries = append(entries, entry)
	}

	return entries
}

func TestVerify_IntactChain(t *testing.T) {
	entries := buildHistory(t, 4)

	report := chain.Verify(entries)
	assert.True(t, report.Valid)
	assert.Equal(t, 4, report.Checked)
	assert.Equal(t, entries[3].Hash, report.HeadHash)
	assert.Equal(t, chain.Genesis, entries[0].PreviousHash)
}

func TestVerify_EmptyHistory(t *testing.T) {
	report := chain.Verify(nil)
	assert.True(t, report.Valid)
	assert.Zero(t, report.Checked)
}

func TestVerify_DetectsEditedEntry(t *testing.T) {
	entries := buildHistory(t, 4)
	entries[1].NewValue = model.Text("needs_action")

	report := chain.Verify(entries)
	require.False(t, report.Valid)
	assert.Equal(t, entries[1].ID, report.BrokenID)
	assert.Equal(t, int64(2), report.BrokenSeq)
	assert.Equal(t, 2, report.Checked)
}

func TestVerify_DetectsRemovedEntry(t *testing.T) {
	entries := buildHistory(t, 4)
	entries = append(entries[:2], entries[3:]...)

	report := chain.Verify(entries)
	require.False(t, report.Valid)
	assert.Equal(t, "entry-d", report.BrokenID)
}

func TestVerify_DetectsRehashedEntry(t *testing.T) {
	entries := buildHistory(t, 3)
	entries[0].AdminName = "Someone else"
	entries[0].Hash = chain.Hash(entries[0].PreviousHash, entries[0])

	report := chain.Verify(entries)
	require.False(t, report.Valid)
	assert.Equal(t, entries[1].ID, report.BrokenID)
}

func TestHash_NullDiffersFromEmpty(t *testing.T) {
	entry := model.Entry{ID: "e", BookingID: "b", Action: model.ActionBookingUpdated, CreatedAt: time.Unix(0, 0)}

	withNull := chain.Hash(chain.Genesis, entry)

	empty := ""
	entry.Note = &empty

	assert.NotEqual(t, withNull, chain.Hash(chain.Genesis, entry))
}

func TestHash_IndependentOfTimezoneAndNanoseconds(t *testing.T) {
	at := time.Date(2026, 5, 1, 8, 0, 0, 123456789, time.UTC)
	entry := model.Entry{ID: "e", BookingID: "b", Action: model.ActionBookingUpdated, CreatedAt: at}

	stored := entry
	stored.CreatedAt = at.Truncate(time.Microsecond).In(time.FixedZone("ICT", 7*60*60))

	assert.Equal(t, chain.Hash(chain.Genesis, entry), chain.Hash(chain.Genesis, stored))
	assert.Len(t, chain.Hash(chain.Genesis, entry), 64)
}
