package tokenizer

import (
	"errors"
	"fmt"
)

// ErrMalformedLine marks a data line without the name separator.
var ErrMalformedLine = errors.New("malformed line")

// LineError locates a tokenizer failure within the source text.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }
