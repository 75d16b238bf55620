package service

import (
	repository "github.com/okian/fiprank/internal/adapters/repository"
	"github.com/okian/fiprank/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the snapshot store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithSeparatorWidth sets the number of spaces that end the name column.
func WithSeparatorWidth(width int) Option {
	return func(s *Service) {
		if width > 0 {
			s.separatorWidth = width
		}
	}
}

// WithLoadWorkers bounds how many prior snapshots are loaded at once.
func WithLoadWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.loadWorkers = n
		}
	}
}
