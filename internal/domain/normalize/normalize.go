// Package normalize turns extracted ranking text into the canonical
// delimited table.
package normalize

import (
	"strings"

	"github.com/okian/fiprank/internal/domain/glyph"
	"github.com/okian/fiprank/internal/domain/tokenizer"
)

// Canonical table format.
const (
	Delimiter  = ","
	Terminator = "\r\n"
)

const byteOrderMark = "\uFEFF"

// Document is a normalized table: the header followed by one row per record.
type Document struct {
	Header []string
	Rows   [][]string

	// Repaired counts the names changed by glyph repair.
	Repaired int
}

// String renders the document in canonical form. Rows are separated, not
// terminated, by Terminator.
func (d Document) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(d.Header, Delimiter))
	for _, row := range d.Rows {
		b.WriteString(Terminator)
		b.WriteString(strings.Join(row, Delimiter))
	}
	return b.String()
}

// Normalizer builds Documents from raw extracted text.
type Normalizer struct {
	tokenizer *tokenizer.Tokenizer
}

// New creates a normalizer with configuration options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{tokenizer: tokenizer.New()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize parses text line by line. The first line is the header and is
// not repaired. Any malformed data line aborts the whole document with a
// *tokenizer.LineError.
func (n *Normalizer) Normalize(text string) (Document, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Document{}, ErrEmptyInput
	}

	doc := Document{
		Header: strings.Fields(strings.TrimPrefix(lines[0], byteOrderMark)),
		Rows:   make([][]string, 0, len(lines)-1),
	}
	for i, line := range lines[1:] {
		tl, err := n.tokenizer.Split(line)
		if err != nil {
			return Document{}, &tokenizer.LineError{Line: i + 2, Text: line, Err: err}
		}
		name := glyph.Repair(tl.Name)
		if name != tl.Name {
			doc.Repaired++
		}
		row := make([]string, 0, len(tl.Fields)+1)
		row = append(row, name)
		row = append(row, tl.Fields...)
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

// splitLines splits on '\n', drops a trailing '\r' from each line and does
// not yield an empty final line after a trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
