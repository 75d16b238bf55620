package history

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const labelLayout = "2006-01-02"

var (
	isoDate = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	dmyDate = regexp.MustCompile(`\d{2}-\d{2}-\d{4}`)
)

// LabelFromPath derives a history label from a snapshot file name. Ranking
// exports are named like "Ranking-Male-11-09-2023.csv", which yields
// "2023-09-11". ISO dates are kept as they are. Anything else falls back to
// the file name without its extension.
func LabelFromPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if m := isoDate.FindString(stem); m != "" {
		if _, err := time.Parse(labelLayout, m); err == nil {
			return m
		}
	}
	if m := dmyDate.FindString(stem); m != "" {
		if t, err := time.Parse("02-01-2006", m); err == nil {
			return t.Format(labelLayout)
		}
	}
	return stem
}
