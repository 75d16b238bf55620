// Package glyph reverses the double-encoding corruption that the PDF text
// extraction introduces into player names.
package glyph

import (
	"strings"
	"unicode/utf8"
)

// Rewrite replaces every occurrence of From with To.
type Rewrite struct {
	From string
	To   string
}

// table is evaluated top to bottom. Several From values share prefixes with
// later entries, so the order is part of the contract.
var table = []Rewrite{
	{"Ă\u0083Â±", "Ă±"},
	{"Ă\u0083Â€", "Ă€"},
	{"Ă\u0083ÂČ", "ĂČ"},
	{"Ă\u0083Â§", "Ă§"},
	{"Ă\u0083ÂŁ", "ĂŁ"},
	{"Ă\u0083Â¶", "Ă¶"},
	{"Ă\u0083Â©", "Ă©"},
	{"Ă\u0083ÂĄ", "ĂĄ"},
	{"Ă\u0083Âł", "Ăł"},
	{"Ă\u0085â\u0080\u009E", "Ć\u0084"},
	{"Ă\u0083Â„", "Ă„"},
	{"Ă\u0083ÂŻ", "ĂŻ"},
	{"Ă\u0085 ", "Ć "},
	{"Ă\u0085Â«", "Ć«"},
	{"Ă\u0085ÂŸ", "ĆŸ"},
	{"Ă\u0083ÂŹ", "ĂŹ"},
	{"Ă\u0085Âœ", "Ćœ"},
	{"Ă\u0083", "Ă\u0081"},
	{"Ă\u0082", ""},
	{"Ă\u0085â\u0080 ", "Ć\u0086"},
	{"Ă\u0085ÂĄ", "ĆĄ"},
	{"Ă\u0084Â±", "Ä±"},
}

// Table returns a copy of the rewrite table in evaluation order.
func Table() []Rewrite {
	out := make([]Rewrite, len(table))
	copy(out, table)
	return out
}

// Repair applies every rewrite in order, each one globally. Pure ASCII input
// is returned untouched. Repair never fails; unknown corruption passes
// through as is.
func Repair(s string) string {
	if isASCII(s) {
		return s
	}
	for _, rw := range table {
		s = strings.ReplaceAll(s, rw.From, rw.To)
	}
	return s
}

// Corrupted reports whether s still contains any From pattern of the table.
func Corrupted(s string) bool {
	if isASCII(s) {
		return false
	}
	for _, rw := range table {
		if strings.Contains(s, rw.From) {
			return true
		}
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
