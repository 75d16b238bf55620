package tokenizer

import "strings"

const (
	// DefaultSeparatorWidth matches pdftotext -layout output of the current ranking.
	DefaultSeparatorWidth = 2

	// expectedFields is country, points and position.
	expectedFields = 3
)

// Line is one tokenized ranking line.
type Line struct {
	Name string
	// Fields holds the trailing tokens. When the source omitted the country,
	// an empty token is injected at the front. Any other irregular count is
	// left as is for the store to reject.
	Fields []string
}

// Tokenizer splits lines at the first run of width spaces.
type Tokenizer struct {
	width int
	sep   string
}

// New creates a tokenizer with configuration options.
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{width: DefaultSeparatorWidth}
	for _, opt := range opts {
		opt(t)
	}
	t.sep = strings.Repeat(" ", t.width)
	return t
}

// SeparatorWidth returns the configured separator width.
func (t *Tokenizer) SeparatorWidth() int { return t.width }

// Split tokenizes a single data line. It returns ErrMalformedLine when the
// line holds no separator run, which includes the empty line.
func (t *Tokenizer) Split(line string) (Line, error) {
	name, rest, ok := strings.Cut(line, t.sep)
	if !ok {
		return Line{}, ErrMalformedLine
	}
	fields := strings.Fields(rest)
	if len(fields) == expectedFields-1 {
		fields = append([]string{""}, fields...)
	}
	return Line{Name: name, Fields: fields}, nil
}
