package repository

import "github.com/okian/fiprank/pkg/logger"

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithLogger sets the logger used for write and skip notices.
func WithLogger(l logger.Logger) Option {
	return func(s *CSVStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithComma overrides the field delimiter.
func WithComma(r rune) Option {
	return func(s *CSVStore) {
		if r != 0 {
			s.comma = r
		}
	}
}
