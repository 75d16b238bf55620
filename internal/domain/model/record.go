// Package model contains domain models passed between layers.
package model

import "github.com/okian/fiprank/internal/domain/types"

// HistoryEntry is a prior snapshot's observation of a record.
type HistoryEntry struct {
	Label    string // opaque snapshot label, usually a date
	Points   int
	Position int
}

// Record is one ranked entity of a snapshot.
type Record struct {
	Name     string // join key across snapshots
	Country  string // may be empty
	Points   int
	Position int // 1 = best, taken as given

	// History is ordered oldest first and only ever appended to.
	History []HistoryEntry

	// Deltas against the most recently merged history entry.
	PointsDelta   types.Delta
	PositionDelta types.Delta
}

// LastHistory returns the most recently merged history entry.
func (r *Record) LastHistory() (HistoryEntry, bool) {
	if len(r.History) == 0 {
		return HistoryEntry{}, false
	}
	return r.History[len(r.History)-1], true
}

// AppendHistory adds e as the newest history entry and recomputes both
// deltas from it. Points improve upwards, positions improve downwards, so a
// positive PositionDelta means the record climbed.
func (r *Record) AppendHistory(e HistoryEntry) {
	r.History = append(r.History, e)
	r.PointsDelta = types.Some(r.Points - e.Points)
	r.PositionDelta = types.Some(e.Position - r.Position)
}
