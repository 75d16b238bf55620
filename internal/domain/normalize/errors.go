package normalize

import "errors"

// ErrEmptyInput marks a source without a header line.
var ErrEmptyInput = errors.New("empty input: missing header line")
