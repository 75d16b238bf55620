package repository

import (
	"errors"
	"fmt"
)

// Sentinel kinds for snapshot store errors.
var (
	ErrNotFound    = errors.New("snapshot not found")
	ErrDeserialize = errors.New("snapshot deserialization failed")
	// ErrMissingColumn also matches ErrDeserialize.
	ErrMissingColumn = fmt.Errorf("%w: missing required column", ErrDeserialize)
)

// RowError locates a deserialization failure. Row is the 1-based data row,
// the header excluded.
type RowError struct {
	Path string
	Row  int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.Path, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
