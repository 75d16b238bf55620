// Package service wires the ranking pipeline: text extraction output is
// normalized into a snapshot table, snapshots are loaded into records and
// prior snapshots are merged into their history.
package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/okian/fiprank/internal/adapters/loader"
	repository "github.com/okian/fiprank/internal/adapters/repository"
	"github.com/okian/fiprank/internal/domain/countries"
	"github.com/okian/fiprank/internal/domain/history"
	"github.com/okian/fiprank/internal/domain/model"
	"github.com/okian/fiprank/internal/domain/normalize"
	"github.com/okian/fiprank/internal/domain/tokenizer"
	"github.com/okian/fiprank/pkg/logger"
	"github.com/okian/fiprank/pkg/metrics"
)

// Service implements the operations the presentation layer consumes.
// It holds no snapshot state; callers own the records they load.
type Service struct {
	store          repository.Store
	normalizer     *normalize.Normalizer
	separatorWidth int
	loadWorkers    int
	logger         logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		separatorWidth: tokenizer.DefaultSeparatorWidth,
		loadWorkers:    runtime.NumCPU(),
		logger:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewCSVStore(repository.WithLogger(s.logger))
	}
	s.normalizer = normalize.New(normalize.WithTokenizer(
		tokenizer.New(tokenizer.WithSeparatorWidth(s.separatorWidth)),
	))
	return s
}

// Normalize turns extracted text into the canonical table document.
func (s *Service) Normalize(ctx context.Context, text string) (normalize.Document, error) {
	doc, err := s.normalizer.Normalize(text)
	if err != nil {
		metrics.RecordErrorByComponent("normalize", errorType(err))
		return normalize.Document{}, err
	}
	metrics.RecordLinesParsed(len(doc.Rows))
	metrics.RecordNamesRepaired(doc.Repaired)
	s.logger.Debug(ctx, "normalized ranking text",
		logger.Int("rows", len(doc.Rows)),
		logger.Int("repaired", doc.Repaired),
	)
	return doc, nil
}

// Convert reads the source text, normalizes it and persists it to
// destination. It reports whether the snapshot was written; an existing
// destination is left alone.
func (s *Service) Convert(ctx context.Context, source, destination string) (bool, error) {
	data, err := os.ReadFile(source)
	if errors.Is(err, fs.ErrNotExist) {
		metrics.RecordErrorByComponent("service", "missing_input")
		return false, fmt.Errorf("%w: %s", ErrMissingInput, source)
	}
	if err != nil {
		return false, fmt.Errorf("read source %s: %w", source, err)
	}

	s.logger.Info(ctx, "converting ranking text",
		logger.String("source", source),
		logger.String("destination", destination),
		logger.Int("separatorWidth", s.separatorWidth),
	)
	doc, err := s.Normalize(ctx, string(data))
	if err != nil {
		return false, fmt.Errorf("%s: %w", source, err)
	}
	return s.store.Save(ctx, doc.String(), destination)
}

// PersistSnapshot saves an already normalized document. An existing path is
// a skipped write, not an error.
func (s *Service) PersistSnapshot(ctx context.Context, document, path string) error {
	_, err := s.store.Save(ctx, document, path)
	return err
}

// LoadSnapshot loads every record of the snapshot at path.
func (s *Service) LoadSnapshot(ctx context.Context, path string) ([]model.Record, error) {
	records, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "snapshot loaded", logger.String("path", path), logger.Int("records", len(records)))
	return records, nil
}

// Bootstrap converts source into snapshot when the snapshot does not exist
// yet, then loads it.
func (s *Service) Bootstrap(ctx context.Context, source, snapshot string) ([]model.Record, error) {
	if _, err := os.Stat(snapshot); errors.Is(err, fs.ErrNotExist) {
		if _, err := s.Convert(ctx, source, snapshot); err != nil {
			return nil, err
		}
	}
	return s.LoadSnapshot(ctx, snapshot)
}

// MergeHistory loads the prior snapshot at priorPath and merges it into
// current under label. Records of current are mutated in place.
func (s *Service) MergeHistory(ctx context.Context, current []model.Record, priorPath, label string) error {
	prior, err := s.store.Load(ctx, priorPath)
	if err != nil {
		return fmt.Errorf("load prior snapshot: %w", err)
	}
	st := history.Merge(current, prior, label)
	metrics.RecordHistoryMerge(st.Matched, st.Unmatched)
	s.logger.Info(ctx, "history merged",
		logger.String("prior", priorPath),
		logger.String("label", label),
		logger.Int("matched", st.Matched),
		logger.Int("unmatched", st.Unmatched),
	)
	return nil
}

// MergeHistories loads the prior snapshots concurrently and merges them into
// current in the order of priorPaths, so the last path sets the deltas.
// Nothing is merged when any prior fails to load.
func (s *Service) MergeHistories(ctx context.Context, current []model.Record, priorPaths []string, label func(path string) string) error {
	pool := loader.NewPool(s.store,
		loader.WithWorkers(s.loadWorkers),
		loader.WithLogger(s.logger.Named("loader")),
	)
	results, err := pool.LoadAll(ctx, priorPaths)
	if err != nil {
		metrics.RecordErrorByComponent("history", "load_failed")
		return fmt.Errorf("load prior snapshot: %w", err)
	}
	for _, r := range results {
		st := history.Merge(current, r.Records, label(r.Path))
		metrics.RecordHistoryMerge(st.Matched, st.Unmatched)
		s.logger.Info(ctx, "history merged",
			logger.String("prior", r.Path),
			logger.String("label", label(r.Path)),
			logger.Int("matched", st.Matched),
			logger.Int("unmatched", st.Unmatched),
		)
	}
	return nil
}

// DistinctCountries returns the sorted distinct country codes of records.
func (s *Service) DistinctCountries(records []model.Record) []string {
	return countries.All(records)
}

// TopCountries returns the n countries with the most records.
func (s *Service) TopCountries(records []model.Record, n int) []string {
	return countries.Top(records, n)
}

// TopRecords returns the first n records in document order, which is
// ranking order for pdftotext extracts.
func TopRecords(records []model.Record, n int) []model.Record {
	if n < 0 {
		n = 0
	}
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}

func errorType(err error) string {
	switch {
	case errors.Is(err, tokenizer.ErrMalformedLine):
		return "malformed_line"
	case errors.Is(err, normalize.ErrEmptyInput):
		return "empty_input"
	default:
		return "other"
	}
}
