package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/fiprank/internal/domain/model"
	"github.com/okian/fiprank/pkg/logger"
	"github.com/okian/fiprank/pkg/metrics"
)

const snapshotFileMode = 0o644

// byteOrderMark is dropped from the first header cell when present.
const byteOrderMark = "\uFEFF"

// CSVStore keeps snapshots as comma separated files.
type CSVStore struct {
	logger logger.Logger
	comma  rune
}

// NewCSVStore constructs a CSV store with configuration options.
func NewCSVStore(opts ...Option) *CSVStore {
	s := &CSVStore{
		logger: logger.Nop(),
		comma:  ',',
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save implements Store.Save. The existence check and the create are one
// O_EXCL open, so an existing file is never truncated.
func (s *CSVStore) Save(ctx context.Context, document, destination string) (bool, error) {
	f, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_EXCL, snapshotFileMode)
	if errors.Is(err, fs.ErrExist) {
		s.logger.Info(ctx, "snapshot already exists, skipping", logger.String("path", destination))
		metrics.RecordSnapshotWrite(false)
		return false, nil
	}
	if err != nil {
		metrics.RecordErrorByComponent("repository", "save")
		return false, fmt.Errorf("create snapshot %s: %w", destination, err)
	}

	s.logger.Info(ctx, "writing snapshot", logger.String("path", destination))
	if _, err := io.WriteString(f, document); err != nil {
		_ = f.Close()
		metrics.RecordErrorByComponent("repository", "save")
		return false, fmt.Errorf("write snapshot %s: %w", destination, err)
	}
	if err := f.Close(); err != nil {
		metrics.RecordErrorByComponent("repository", "save")
		return false, fmt.Errorf("close snapshot %s: %w", destination, err)
	}
	metrics.RecordSnapshotWrite(true)
	return true, nil
}

// Load implements Store.Load.
func (s *CSVStore) Load(ctx context.Context, path string) ([]model.Record, error) {
	start := time.Now()
	defer func() {
		metrics.RecordLoadDuration(float64(time.Since(start).Milliseconds()))
	}()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		metrics.RecordErrorByComponent("repository", "not_found")
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		metrics.RecordErrorByComponent("repository", "open")
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := s.decode(path, f)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "deserialize")
		return nil, err
	}

	metrics.RecordSnapshotLoaded(len(records))
	s.logger.Debug(ctx, "snapshot loaded", logger.String("path", path), logger.Int("records", len(records)))
	return records, nil
}

func (s *CSVStore) decode(path string, r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = s.comma
	cr.ReuseRecord = true
	// Names are written unquoted, so a quote inside a name is literal.
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: empty table", path, ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: header: %v", path, ErrDeserialize, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var records []model.Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RowError{Path: path, Row: row, Err: fmt.Errorf("%w: %v", ErrDeserialize, err)}
		}
		rec, err := cols.record(fields)
		if err != nil {
			return nil, &RowError{Path: path, Row: row, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

// columns holds the header index of each record attribute.
type columns struct {
	name, country, points, position int
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{name: -1, country: -1, points: -1, position: -1}
	for i, h := range header {
		var slot *int
		switch h {
		case ColumnName, ColumnNameAlias:
			slot = &cols.name
		case ColumnCountry:
			slot = &cols.country
		case ColumnPoints:
			slot = &cols.points
		case ColumnPosition:
			slot = &cols.position
		default:
			continue
		}
		if *slot >= 0 {
			return columns{}, fmt.Errorf("%w: duplicate column %q", ErrDeserialize, h)
		}
		*slot = i
	}

	for _, c := range []struct {
		name string
		idx  int
	}{
		{ColumnName, cols.name},
		{ColumnCountry, cols.country},
		{ColumnPoints, cols.points},
		{ColumnPosition, cols.position},
	} {
		if c.idx < 0 {
			return columns{}, fmt.Errorf("%w %q", ErrMissingColumn, c.name)
		}
	}
	return cols, nil
}

func (c columns) record(fields []string) (model.Record, error) {
	points, err := strconv.Atoi(fields[c.points])
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: %s %q: %v", ErrDeserialize, ColumnPoints, fields[c.points], err)
	}
	position, err := strconv.Atoi(fields[c.position])
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: %s %q: %v", ErrDeserialize, ColumnPosition, fields[c.position], err)
	}
	return model.Record{
		Name:     fields[c.name],
		Country:  fields[c.country],
		Points:   points,
		Position: position,
	}, nil
}
