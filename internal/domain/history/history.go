// Package history merges prior snapshots into the current one and derives
// rank and points deltas.
package history

import "github.com/okian/fiprank/internal/domain/model"

// Stats summarizes a merge.
type Stats struct {
	Matched   int
	Unmatched int
}

// Merge appends prior's observation to every current record with the same
// name and recomputes its deltas. Records without a match are left as they
// are. On duplicate names in prior, the first one in document order wins.
//
// current is mutated in place; prior is only read. Neither slice is retained.
func Merge(current, prior []model.Record, label string) Stats {
	byName := index(prior)

	var st Stats
	for i := range current {
		p, ok := byName[current[i].Name]
		if !ok {
			st.Unmatched++
			continue
		}
		current[i].AppendHistory(model.HistoryEntry{
			Label:    label,
			Points:   prior[p].Points,
			Position: prior[p].Position,
		})
		st.Matched++
	}
	return st
}

// index maps each name to the position of its first record.
func index(records []model.Record) map[string]int {
	m := make(map[string]int, len(records))
	for i, r := range records {
		if _, seen := m[r.Name]; !seen {
			m[r.Name] = i
		}
	}
	return m
}
