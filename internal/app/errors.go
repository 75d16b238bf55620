package service

import "errors"

// ErrMissingInput marks an absent source text file.
var ErrMissingInput = errors.New("source text file not found")
