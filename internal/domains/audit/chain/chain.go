// Package chain links the audit entries of a booking into a blake2b hash chain.
//
//	hash(n) = blake2b-256(hash(n-1) || canonical(entry n))
//
// The first entry of a booking links to the empty hash. Editing any stored field of an
// entry, or removing an entry from the middle of the history, breaks every later link.
package chain

import (
	"encoding/binary"
	"encoding/hex"
	"stayadmin/internal/domains/audit/model"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Genesis is the previous hash of the first entry of every booking.
const Genesis = ""

const (
	reasonPreviousMismatch = "previous hash does not match the preceding entry"
	reasonHashMismatch     = "stored hash does not match the entry contents"
)

// Canonical timestamps are cut to what PostgreSQL timestamptz keeps.
func canonicalTime(t time.Time) string {
	return t.UTC().Truncate(time.Microsecond).Format(time.RFC3339Nano)
}

type encoder struct {
	buf []byte
}

func (e *encoder) text(s string) {
	e.buf = append(e.buf, 1)
	e.buf = binary.BigEndian.AppendUint64(e.buf, uint64(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) optional(s *string) {
	if s == nil {
		e.buf = append(e.buf, 0)

		return
	}

	e.text(*s)
}

// Hash computes the hash of entry when linked after previousHash.
func Hash(previousHash string, entry model.Entry) string {
	enc := encoder{}
	enc.text(previousHash)
	enc.text(entry.ID)
	enc.text(entry.BookingID)
	enc.text(string(entry.Action))
	enc.text(entry.AdminID)
	enc.text(entry.AdminName)
	enc.optional(entry.OldValue)
	enc.optional(entry.NewValue)
	enc.optional(entry.Note)
	enc.text(canonicalTime(entry.CreatedAt))

	sum := blake2b.Sum256(enc.buf)

	return hex.EncodeToString(sum[:])
}

// Seal links entry after previousHash and stores the resulting hash on it.
func Seal(previousHash string, entry model.Entry) model.Entry {
	entry.CreatedAt = entry.CreatedAt.Truncate(time.Microsecond)
	entry.PreviousHash = previousHash
	entry.Hash = Hash(previousHash, entry)

	return entry
}

type Report struct {
	Valid     bool
	Checked   int
	BrokenID  string
	BrokenSeq int64
	Reason    string
	HeadHash  string
}

// Verify walks entries oldest first and stops at the first broken link.
func Verify(entries []model.Entry) Report {
	report := Report{Valid: true}
	previous := Genesis

	for _, entry := range entries {
		report.Checked++

		switch {
		case entry.PreviousHash != previous:
			report.Reason = reasonPreviousMismatch
		case Hash(entry.PreviousHash, entry) != entry.Hash:
			report.Reason = reasonHashMismatch
		default:
			previous = entry.Hash

			continue
		}

		report.Valid = false
		report.BrokenID = entry.ID
		report.BrokenSeq = entry.Seq

		return report
	}

	report.HeadHash = previous

	return report
}
