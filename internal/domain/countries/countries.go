// Package countries aggregates snapshot records by country code.
package countries

import (
	"sort"

	"github.com/okian/fiprank/internal/domain/model"
)

// DefaultTop is the number of countries returned by Top when callers have
// no preference.
const DefaultTop = 10

// Count is a country with its number of records.
type Count struct {
	Country string
	Records int
}

// All returns the distinct country codes in ascending order. The empty code
// of records without a country is included.
func All(records []model.Record) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		out = append(out, r.Country)
	}
	sort.Strings(out)
	return out
}

// Counts returns every country with its record count, most records first.
// Equal counts are ordered by country code.
func Counts(records []model.Record) []Count {
	byCountry := make(map[string]int)
	for _, r := range records {
		byCountry[r.Country]++
	}
	out := make([]Count, 0, len(byCountry))
	for c, n := range byCountry {
		out = append(out, Count{Country: c, Records: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Records != out[j].Records {
			return out[i].Records > out[j].Records
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// TopCounts returns at most n entries of Counts.
func TopCounts(records []model.Record, n int) []Count {
	if n <= 0 {
		return []Count{}
	}
	counts := Counts(records)
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// Top returns the codes of the n countries with the most records.
func Top(records []model.Record, n int) []string {
	counts := TopCounts(records, n)
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.Country
	}
	return out
}

// Filter returns the records of one country in their original order.
func Filter(records []model.Record, country string) []model.Record {
	out := make([]model.Record, 0)
	for _, r := range records {
		if r.Country == country {
			out = append(out, r)
		}
	}
	return out
}
